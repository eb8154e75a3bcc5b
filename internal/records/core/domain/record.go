package domain

import "time"

// Record is one generator invocation as reported by its .yo-rc.json.
// Empty strings and nil pointers mean the generator did not report the field.
type Record struct {
	ID        string
	CreatedAt time.Time
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

// Bool returns a pointer to b, for filling optional record flags.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n.
func Int(n int) *int { return &n }
