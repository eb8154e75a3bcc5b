package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"generator-stats-service/internal/platform/logger"
	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/ports"

	"github.com/google/uuid"
)

var (
	ErrInvalidRecord  = errors.New("invalid record")
	ErrInvalidID      = errors.New("record id must be a uuid")
	ErrFutureTime     = errors.New("timestamp cannot be in the future")
	ErrInvalidPayload = errors.New("invalid yo-rc payload")
)

type StoreRecordUseCase struct {
	repo ports.RecordRepositoryPort
}

func NewStoreRecordUseCase(repo ports.RecordRepositoryPort) *StoreRecordUseCase {
	return &StoreRecordUseCase{repo: repo}
}

// SaveRecordInput carries a record as reported by a client. Timestamp is unix
// seconds; zero means "now". ID is optional and makes retries idempotent.
type SaveRecordInput struct {
	ID        string
	Timestamp int64
	Owner     string

	JHipsterVersion string
	GitProvider     string
	NodeVersion     string
	OS              string
	Arch            string
	UserLanguage    string

	ApplicationType      string
	AuthenticationType   string
	CacheProvider        string
	EnableHibernateCache *bool
	Websocket            string
	DatabaseType         string
	DevDatabaseType      string
	ProdDatabaseType     string
	SearchEngine         string
	MessageBroker        string
	ServiceDiscoveryType string
	BuildTool            string
	EnableSwaggerCodegen *bool
	ClientFramework      string
	UseSass              *bool
	ClientPackageManager string
	EnableTranslation    *bool
	NativeLanguage       string
	HasProtractor        *bool
	HasGatling           *bool
	HasCucumber          *bool
	ServerPort           *int

	SelectedLanguages []string
}

type SaveRecordResult struct {
	ID      string
	Created bool
}

func (uc *StoreRecordUseCase) Save(ctx context.Context, in SaveRecordInput) (SaveRecordResult, error) {
	if err := uc.validateInput(in); err != nil {
		return SaveRecordResult{}, err
	}

	r := toRecord(in)
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	logger.C(ctx).Debug().Str("id", r.ID).Str("jhipster_version", r.JHipsterVersion).Msg("request to save record")

	created, err := uc.repo.InsertRecord(ctx, r)
	if err != nil {
		return SaveRecordResult{}, err
	}

	return SaveRecordResult{ID: r.ID, Created: created}, nil
}

type BulkSaveRecordsInput struct {
	Records []SaveRecordInput
}

type BulkSaveRecordsResult struct {
	Created    int
	Duplicates int
}

// BulkSave validates every record before storing any of them.
func (uc *StoreRecordUseCase) BulkSave(ctx context.Context, in BulkSaveRecordsInput) (BulkSaveRecordsResult, error) {
	var res BulkSaveRecordsResult

	for _, rec := range in.Records {
		if err := uc.validateInput(rec); err != nil {
			return res, err
		}
	}

	for _, rec := range in.Records {
		out, err := uc.Save(ctx, rec)
		if err != nil {
			return res, err
		}

		if out.Created {
			res.Created++
		} else {
			res.Duplicates++
		}
	}

	return res, nil
}

// Ingest parses a raw .yo-rc.json document and stores its generator section for owner.
func (uc *StoreRecordUseCase) Ingest(ctx context.Context, owner string, payload []byte) (SaveRecordResult, error) {
	logger.C(ctx).Debug().Int("bytes", len(payload)).Msg("application configuration received")

	in, err := ParseYoRC(payload)
	if err != nil {
		return SaveRecordResult{}, err
	}
	in.Owner = strings.TrimSpace(owner)

	return uc.Save(ctx, in)
}

func (uc *StoreRecordUseCase) validateInput(in SaveRecordInput) error {
	if strings.TrimSpace(in.JHipsterVersion) == "" {
		return ErrInvalidRecord
	}

	if in.ID != "" {
		if _, err := uuid.Parse(in.ID); err != nil {
			return ErrInvalidID
		}
	}

	if in.Timestamp < 0 {
		return ErrInvalidRecord
	}
	if in.Timestamp > time.Now().Unix() {
		return ErrFutureTime
	}

	return nil
}

func toRecord(in SaveRecordInput) *domain.Record {
	createdAt := time.Now().UTC()
	if in.Timestamp > 0 {
		createdAt = time.Unix(in.Timestamp, 0).UTC()
	}

	languages := in.SelectedLanguages
	if languages == nil {
		languages = []string{}
	}

	return &domain.Record{
		ID:        strings.ToLower(in.ID),
		CreatedAt: createdAt,
		Owner:     in.Owner,

		JHipsterVersion: in.JHipsterVersion,
		GitProvider:     in.GitProvider,
		NodeVersion:     in.NodeVersion,
		OS:              in.OS,
		Arch:            in.Arch,
		UserLanguage:    in.UserLanguage,

		ApplicationType:      in.ApplicationType,
		AuthenticationType:   in.AuthenticationType,
		CacheProvider:        in.CacheProvider,
		EnableHibernateCache: in.EnableHibernateCache,
		Websocket:            in.Websocket,
		DatabaseType:         in.DatabaseType,
		DevDatabaseType:      in.DevDatabaseType,
		ProdDatabaseType:     in.ProdDatabaseType,
		SearchEngine:         in.SearchEngine,
		MessageBroker:        in.MessageBroker,
		ServiceDiscoveryType: in.ServiceDiscoveryType,
		BuildTool:            in.BuildTool,
		EnableSwaggerCodegen: in.EnableSwaggerCodegen,
		ClientFramework:      in.ClientFramework,
		UseSass:              in.UseSass,
		ClientPackageManager: in.ClientPackageManager,
		EnableTranslation:    in.EnableTranslation,
		NativeLanguage:       in.NativeLanguage,
		HasProtractor:        in.HasProtractor,
		HasGatling:           in.HasGatling,
		HasCucumber:          in.HasCucumber,
		ServerPort:           in.ServerPort,

		SelectedLanguages: languages,
	}
}
