package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnsupportedField = errors.New("unsupported record field")

// Field selects one configuration field of a Record for breakdown queries.
type Field int

const (
	FieldJHipsterVersion Field = iota + 1
	FieldGitProvider
	FieldNodeVersion
	FieldOS
	FieldArch
	FieldUserLanguage
	FieldApplicationType
	FieldAuthenticationType
	FieldCacheProvider
	FieldEnableHibernateCache
	FieldWebsocket
	FieldDatabaseType
	FieldDevDatabaseType
	FieldProdDatabaseType
	FieldSearchEngine
	FieldMessageBroker
	FieldServiceDiscoveryType
	FieldBuildTool
	FieldEnableSwaggerCodegen
	FieldClientFramework
	FieldUseSass
	FieldClientPackageManager
	FieldEnableTranslation
	FieldNativeLanguage
	FieldHasProtractor
	FieldHasGatling
	FieldHasCucumber
	FieldServerPort
)

type fieldDef struct {
	name    string
	extract func(r Record) (string, bool)
}

var fields = map[Field]fieldDef{
	FieldJHipsterVersion:      {"jhipsterVersion", func(r Record) (string, bool) { return str(r.JHipsterVersion) }},
	FieldGitProvider:          {"gitProvider", func(r Record) (string, bool) { return str(r.GitProvider) }},
	FieldNodeVersion:          {"nodeVersion", func(r Record) (string, bool) { return str(r.NodeVersion) }},
	FieldOS:                   {"os", func(r Record) (string, bool) { return str(r.OS) }},
	FieldArch:                 {"arch", func(r Record) (string, bool) { return str(r.Arch) }},
	FieldUserLanguage:         {"userLanguage", func(r Record) (string, bool) { return str(r.UserLanguage) }},
	FieldApplicationType:      {"applicationType", func(r Record) (string, bool) { return str(r.ApplicationType) }},
	FieldAuthenticationType:   {"authenticationType", func(r Record) (string, bool) { return str(r.AuthenticationType) }},
	FieldCacheProvider:        {"cacheProvider", func(r Record) (string, bool) { return str(r.CacheProvider) }},
	FieldEnableHibernateCache: {"enableHibernateCache", func(r Record) (string, bool) { return boolean(r.EnableHibernateCache) }},
	FieldWebsocket:            {"websocket", func(r Record) (string, bool) { return str(r.Websocket) }},
	FieldDatabaseType:         {"databaseType", func(r Record) (string, bool) { return str(r.DatabaseType) }},
	FieldDevDatabaseType:      {"devDatabaseType", func(r Record) (string, bool) { return str(r.DevDatabaseType) }},
	FieldProdDatabaseType:     {"prodDatabaseType", func(r Record) (string, bool) { return str(r.ProdDatabaseType) }},
	FieldSearchEngine:         {"searchEngine", func(r Record) (string, bool) { return str(r.SearchEngine) }},
	FieldMessageBroker:        {"messageBroker", func(r Record) (string, bool) { return str(r.MessageBroker) }},
	FieldServiceDiscoveryType: {"serviceDiscoveryType", func(r Record) (string, bool) { return str(r.ServiceDiscoveryType) }},
	FieldBuildTool:            {"buildTool", func(r Record) (string, bool) { return str(r.BuildTool) }},
	FieldEnableSwaggerCodegen: {"enableSwaggerCodegen", func(r Record) (string, bool) { return boolean(r.EnableSwaggerCodegen) }},
	FieldClientFramework:      {"clientFramework", func(r Record) (string, bool) { return str(r.ClientFramework) }},
	FieldUseSass:              {"useSass", func(r Record) (string, bool) { return boolean(r.UseSass) }},
	FieldClientPackageManager: {"clientPackageManager", func(r Record) (string, bool) { return str(r.ClientPackageManager) }},
	FieldEnableTranslation:    {"enableTranslation", func(r Record) (string, bool) { return boolean(r.EnableTranslation) }},
	FieldNativeLanguage:       {"nativeLanguage", func(r Record) (string, bool) { return str(r.NativeLanguage) }},
	FieldHasProtractor:        {"hasProtractor", func(r Record) (string, bool) { return boolean(r.HasProtractor) }},
	FieldHasGatling:           {"hasGatling", func(r Record) (string, bool) { return boolean(r.HasGatling) }},
	FieldHasCucumber:          {"hasCucumber", func(r Record) (string, bool) { return boolean(r.HasCucumber) }},
	FieldServerPort:           {"serverPort", func(r Record) (string, bool) { return number(r.ServerPort) }},
}

// Fields lists every selectable field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, len(fields))
	for f := FieldJHipsterVersion; f <= FieldServerPort; f++ {
		out = append(out, f)
	}
	return out
}

// ParseField resolves a field by its .yo-rc.json name, case-insensitively.
func ParseField(s string) (Field, error) {
	name := strings.TrimSpace(s)
	for _, f := range Fields() {
		if strings.EqualFold(fields[f].name, name) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedField, s)
}

func (f Field) Valid() bool {
	_, ok := fields[f]
	return ok
}

func (f Field) String() string {
	if def, ok := fields[f]; ok {
		return def.name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Value returns the string form of the field on r, or false when r does not carry it.
func (f Field) Value(r Record) (string, bool) {
	def, ok := fields[f]
	if !ok {
		return "", false
	}
	return def.extract(r)
}

func str(s string) (string, bool) {
	return s, s != ""
}

func boolean(b *bool) (string, bool) {
	if b == nil {
		return "", false
	}
	return strconv.FormatBool(*b), true
}

func number(n *int) (string, bool) {
	if n == nil {
		return "", false
	}
	return strconv.Itoa(*n), true
}
