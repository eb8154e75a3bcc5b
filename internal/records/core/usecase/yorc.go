package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const generatorKey = "generator-jhipster"

// flexString accepts a JSON string, bool or number. Generators write `false`
// for disabled options such as searchEngine, which is kept as "false".
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*s = flexString(strconv.FormatBool(t))
	case float64:
		*s = flexString(strconv.FormatFloat(t, 'f', -1, 64))
	default:
		return fmt.Errorf("unexpected value %s", b)
	}
	return nil
}

// flexInt accepts a JSON number or a numeric string.
type flexInt struct {
	v *int
}

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	raw := strings.Trim(string(b), `"`)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", b)
	}
	n.v = &v
	return nil
}

type yoRCGenerator struct {
	JHipsterVersion      flexString `json:"jhipsterVersion"`
	GitProvider          flexString `json:"gitProvider"`
	NodeVersion          flexString `json:"nodeVersion"`
	OS                   flexString `json:"os"`
	Arch                 flexString `json:"arch"`
	UserLanguage         flexString `json:"userLanguage"`
	ApplicationType      flexString `json:"applicationType"`
	AuthenticationType   flexString `json:"authenticationType"`
	CacheProvider        flexString `json:"cacheProvider"`
	EnableHibernateCache *bool      `json:"enableHibernateCache"`
	Websocket            flexString `json:"websocket"`
	DatabaseType         flexString `json:"databaseType"`
	DevDatabaseType      flexString `json:"devDatabaseType"`
	ProdDatabaseType     flexString `json:"prodDatabaseType"`
	SearchEngine         flexString `json:"searchEngine"`
	MessageBroker        flexString `json:"messageBroker"`
	ServiceDiscoveryType flexString `json:"serviceDiscoveryType"`
	BuildTool            flexString `json:"buildTool"`
	EnableSwaggerCodegen *bool      `json:"enableSwaggerCodegen"`
	ClientFramework      flexString `json:"clientFramework"`
	UseSass              *bool      `json:"useSass"`
	ClientPackageManager flexString `json:"clientPackageManager"`
	EnableTranslation    *bool      `json:"enableTranslation"`
	NativeLanguage       flexString `json:"nativeLanguage"`
	Languages            []string   `json:"languages"`
	TestFrameworks       []string   `json:"testFrameworks"`
	ServerPort           flexInt    `json:"serverPort"`
}

// ParseYoRC maps the "generator-jhipster" section of a .yo-rc.json document onto a SaveRecordInput.
func ParseYoRC(payload []byte) (SaveRecordInput, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(payload, &doc); err != nil {
		return SaveRecordInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	section, ok := doc[generatorKey]
	if !ok {
		return SaveRecordInput{}, fmt.Errorf("%w: missing %q section", ErrInvalidPayload, generatorKey)
	}

	var g yoRCGenerator
	if err := json.Unmarshal(section, &g); err != nil {
		return SaveRecordInput{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	in := SaveRecordInput{
		JHipsterVersion:      string(g.JHipsterVersion),
		GitProvider:          string(g.GitProvider),
		NodeVersion:          string(g.NodeVersion),
		OS:                   string(g.OS),
		Arch:                 string(g.Arch),
		UserLanguage:         string(g.UserLanguage),
		ApplicationType:      string(g.ApplicationType),
		AuthenticationType:   string(g.AuthenticationType),
		CacheProvider:        string(g.CacheProvider),
		EnableHibernateCache: g.EnableHibernateCache,
		Websocket:            string(g.Websocket),
		DatabaseType:         string(g.DatabaseType),
		DevDatabaseType:      string(g.DevDatabaseType),
		ProdDatabaseType:     string(g.ProdDatabaseType),
		SearchEngine:         string(g.SearchEngine),
		MessageBroker:        string(g.MessageBroker),
		ServiceDiscoveryType: string(g.ServiceDiscoveryType),
		BuildTool:            string(g.BuildTool),
		EnableSwaggerCodegen: g.EnableSwaggerCodegen,
		ClientFramework:      string(g.ClientFramework),
		UseSass:              g.UseSass,
		ClientPackageManager: string(g.ClientPackageManager),
		EnableTranslation:    g.EnableTranslation,
		NativeLanguage:       string(g.NativeLanguage),
		ServerPort:           g.ServerPort.v,
		SelectedLanguages:    g.Languages,
	}

	if g.TestFrameworks != nil {
		has := func(name string) *bool {
			for _, tf := range g.TestFrameworks {
				if strings.EqualFold(tf, name) {
					v := true
					return &v
				}
			}
			v := false
			return &v
		}
		in.HasProtractor = has("protractor")
		in.HasGatling = has("gatling")
		in.HasCucumber = has("cucumber")
	}

	return in, nil
}
