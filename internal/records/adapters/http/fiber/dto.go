package fiber

import (
	"time"

	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/usecase"
)

// RecordRequest is one generator run as reported by a client
// @Description Generator record payload, field names follow .yo-rc.json
type RecordRequest struct {
	ID        string `json:"id,omitempty" example:"0b7f4b5e-9a43-4d7e-8f55-3f1b0c4c2a10" validate:"omitempty,uuid"`
	Timestamp int64  `json:"timestamp,omitempty" example:"1672567200" validate:"gte=0"`

	JHipsterVersion string `json:"jhipsterVersion" example:"7.9.3" validate:"required,max=64"`
	GitProvider     string `json:"gitProvider,omitempty" validate:"max=128"`
	NodeVersion     string `json:"nodeVersion,omitempty" validate:"max=128"`
	OS              string `json:"os,omitempty" validate:"max=128"`
	Arch            string `json:"arch,omitempty" validate:"max=128"`
	UserLanguage    string `json:"userLanguage,omitempty" validate:"max=128"`

	ApplicationType      string `json:"applicationType,omitempty" example:"monolith" validate:"max=128"`
	AuthenticationType   string `json:"authenticationType,omitempty" example:"jwt" validate:"max=128"`
	CacheProvider        string `json:"cacheProvider,omitempty" validate:"max=128"`
	EnableHibernateCache *bool  `json:"enableHibernateCache,omitempty"`
	Websocket            string `json:"websocket,omitempty" validate:"max=128"`
	DatabaseType         string `json:"databaseType,omitempty" example:"sql" validate:"max=128"`
	DevDatabaseType      string `json:"devDatabaseType,omitempty" validate:"max=128"`
	ProdDatabaseType     string `json:"prodDatabaseType,omitempty" validate:"max=128"`
	SearchEngine         string `json:"searchEngine,omitempty" validate:"max=128"`
	MessageBroker        string `json:"messageBroker,omitempty" validate:"max=128"`
	ServiceDiscoveryType string `json:"serviceDiscoveryType,omitempty" validate:"max=128"`
	BuildTool            string `json:"buildTool,omitempty" example:"maven" validate:"max=128"`
	EnableSwaggerCodegen *bool  `json:"enableSwaggerCodegen,omitempty"`
	ClientFramework      string `json:"clientFramework,omitempty" example:"angular" validate:"max=128"`
	UseSass              *bool  `json:"useSass,omitempty"`
	ClientPackageManager string `json:"clientPackageManager,omitempty" validate:"max=128"`
	EnableTranslation    *bool  `json:"enableTranslation,omitempty"`
	NativeLanguage       string `json:"nativeLanguage,omitempty" validate:"max=128"`
	HasProtractor        *bool  `json:"hasProtractor,omitempty"`
	HasGatling           *bool  `json:"hasGatling,omitempty"`
	HasCucumber          *bool  `json:"hasCucumber,omitempty"`
	ServerPort           *int   `json:"serverPort,omitempty" example:"8080" validate:"omitempty,min=1,max=65535"`

	SelectedLanguages []string `json:"selectedLanguages,omitempty" validate:"max=100,dive,required,max=32"`
}

func (r RecordRequest) toInput(owner string) usecase.SaveRecordInput {
	return usecase.SaveRecordInput{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Owner:     owner,

		JHipsterVersion: r.JHipsterVersion,
		GitProvider:     r.GitProvider,
		NodeVersion:     r.NodeVersion,
		OS:              r.OS,
		Arch:            r.Arch,
		UserLanguage:    r.UserLanguage,

		ApplicationType:      r.ApplicationType,
		AuthenticationType:   r.AuthenticationType,
		CacheProvider:        r.CacheProvider,
		EnableHibernateCache: r.EnableHibernateCache,
		Websocket:            r.Websocket,
		DatabaseType:         r.DatabaseType,
		DevDatabaseType:      r.DevDatabaseType,
		ProdDatabaseType:     r.ProdDatabaseType,
		SearchEngine:         r.SearchEngine,
		MessageBroker:        r.MessageBroker,
		ServiceDiscoveryType: r.ServiceDiscoveryType,
		BuildTool:            r.BuildTool,
		EnableSwaggerCodegen: r.EnableSwaggerCodegen,
		ClientFramework:      r.ClientFramework,
		UseSass:              r.UseSass,
		ClientPackageManager: r.ClientPackageManager,
		EnableTranslation:    r.EnableTranslation,
		NativeLanguage:       r.NativeLanguage,
		HasProtractor:        r.HasProtractor,
		HasGatling:           r.HasGatling,
		HasCucumber:          r.HasCucumber,
		ServerPort:           r.ServerPort,

		SelectedLanguages: r.SelectedLanguages,
	}
}

type CreateRecordResponse struct {
	Status string `json:"status" example:"created"`
	ID     string `json:"id" example:"0b7f4b5e-9a43-4d7e-8f55-3f1b0c4c2a10"`
}

type BulkCreateRecordsRequest struct {
	Records []RecordRequest `json:"records"`
}

type BulkCreateRecordsResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

// RecordResponse is a stored record; missing fields are omitted
type RecordResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Owner     string    `json:"owner,omitempty"`

	JHipsterVersion string `json:"jhipsterVersion"`
	GitProvider     string `json:"gitProvider,omitempty"`
	NodeVersion     string `json:"nodeVersion,omitempty"`
	OS              string `json:"os,omitempty"`
	Arch            string `json:"arch,omitempty"`
	UserLanguage    string `json:"userLanguage,omitempty"`

	ApplicationType      string `json:"applicationType,omitempty"`
	AuthenticationType   string `json:"authenticationType,omitempty"`
	CacheProvider        string `json:"cacheProvider,omitempty"`
	EnableHibernateCache *bool  `json:"enableHibernateCache,omitempty"`
	Websocket            string `json:"websocket,omitempty"`
	DatabaseType         string `json:"databaseType,omitempty"`
	DevDatabaseType      string `json:"devDatabaseType,omitempty"`
	ProdDatabaseType     string `json:"prodDatabaseType,omitempty"`
	SearchEngine         string `json:"searchEngine,omitempty"`
	MessageBroker        string `json:"messageBroker,omitempty"`
	ServiceDiscoveryType string `json:"serviceDiscoveryType,omitempty"`
	BuildTool            string `json:"buildTool,omitempty"`
	EnableSwaggerCodegen *bool  `json:"enableSwaggerCodegen,omitempty"`
	ClientFramework      string `json:"clientFramework,omitempty"`
	UseSass              *bool  `json:"useSass,omitempty"`
	ClientPackageManager string `json:"clientPackageManager,omitempty"`
	EnableTranslation    *bool  `json:"enableTranslation,omitempty"`
	NativeLanguage       string `json:"nativeLanguage,omitempty"`
	HasProtractor        *bool  `json:"hasProtractor,omitempty"`
	HasGatling           *bool  `json:"hasGatling,omitempty"`
	HasCucumber          *bool  `json:"hasCucumber,omitempty"`
	ServerPort           *int   `json:"serverPort,omitempty"`

	SelectedLanguages []string `json:"selectedLanguages"`
}

func toRecordResponse(r domain.Record) RecordResponse {
	if r.SelectedLanguages == nil {
		r.SelectedLanguages = []string{}
	}
	return RecordResponse{
		ID:        r.ID,
		CreatedAt: r.CreatedAt.UTC(),
		Owner:     r.Owner,

		JHipsterVersion: r.JHipsterVersion,
		GitProvider:     r.GitProvider,
		NodeVersion:     r.NodeVersion,
		OS:              r.OS,
		Arch:            r.Arch,
		UserLanguage:    r.UserLanguage,

		ApplicationType:      r.ApplicationType,
		AuthenticationType:   r.AuthenticationType,
		CacheProvider:        r.CacheProvider,
		EnableHibernateCache: r.EnableHibernateCache,
		Websocket:            r.Websocket,
		DatabaseType:         r.DatabaseType,
		DevDatabaseType:      r.DevDatabaseType,
		ProdDatabaseType:     r.ProdDatabaseType,
		SearchEngine:         r.SearchEngine,
		MessageBroker:        r.MessageBroker,
		ServiceDiscoveryType: r.ServiceDiscoveryType,
		BuildTool:            r.BuildTool,
		EnableSwaggerCodegen: r.EnableSwaggerCodegen,
		ClientFramework:      r.ClientFramework,
		UseSass:              r.UseSass,
		ClientPackageManager: r.ClientPackageManager,
		EnableTranslation:    r.EnableTranslation,
		NativeLanguage:       r.NativeLanguage,
		HasProtractor:        r.HasProtractor,
		HasGatling:           r.HasGatling,
		HasCucumber:          r.HasCucumber,
		ServerPort:           r.ServerPort,

		SelectedLanguages: r.SelectedLanguages,
	}
}

type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
	Limit   int              `json:"limit" example:"100"`
	Offset  int              `json:"offset" example:"0"`
}

type CountRecordsResponse struct {
	Count int64 `json:"count" example:"42"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_record"`
	Message string `json:"message,omitempty" example:"invalid record"`
}
