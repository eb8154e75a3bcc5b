package postgres

import (
	"database/sql"
	"strings"

	"generator-stats-service/internal/records/core/domain"

	"github.com/lib/pq"
)

// Scanner is satisfied by *sql.Row, *sql.Rows and the RowScanner wrappers.
type Scanner interface {
	Scan(dest ...any) error
}

type column struct {
	name  string
	value func(r *domain.Record) any
	dest  func(r *domain.Record) any
}

func textColumn(name string, field func(r *domain.Record) *string) column {
	return column{
		name:  name,
		value: func(r *domain.Record) any { return nullText{dst: field(r)}.value() },
		dest:  func(r *domain.Record) any { return nullText{dst: field(r)} },
	}
}

func flagColumn(name string, field func(r *domain.Record) **bool) column {
	return column{
		name: name,
		value: func(r *domain.Record) any {
			if b := *field(r); b != nil {
				return *b
			}
			return nil
		},
		dest: func(r *domain.Record) any { return nullFlag{dst: field(r)} },
	}
}

// columns is the single source of truth for the yorc table layout; insert
// placeholders and scan destinations are derived from it in order.
var columns = []column{
	{
		name:  "id",
		value: func(r *domain.Record) any { return r.ID },
		dest:  func(r *domain.Record) any { return &r.ID },
	},
	{
		name:  "created_at",
		value: func(r *domain.Record) any { return r.CreatedAt },
		dest:  func(r *domain.Record) any { return &r.CreatedAt },
	},
	textColumn("owner", func(r *domain.Record) *string { return &r.Owner }),
	{
		name:  "jhipster_version",
		value: func(r *domain.Record) any { return r.JHipsterVersion },
		dest:  func(r *domain.Record) any { return &r.JHipsterVersion },
	},
	textColumn("git_provider", func(r *domain.Record) *string { return &r.GitProvider }),
	textColumn("node_version", func(r *domain.Record) *string { return &r.NodeVersion }),
	textColumn("os", func(r *domain.Record) *string { return &r.OS }),
	textColumn("arch", func(r *domain.Record) *string { return &r.Arch }),
	textColumn("user_language", func(r *domain.Record) *string { return &r.UserLanguage }),
	textColumn("application_type", func(r *domain.Record) *string { return &r.ApplicationType }),
	textColumn("authentication_type", func(r *domain.Record) *string { return &r.AuthenticationType }),
	textColumn("cache_provider", func(r *domain.Record) *string { return &r.CacheProvider }),
	flagColumn("enable_hibernate_cache", func(r *domain.Record) **bool { return &r.EnableHibernateCache }),
	textColumn("websocket", func(r *domain.Record) *string { return &r.Websocket }),
	textColumn("database_type", func(r *domain.Record) *string { return &r.DatabaseType }),
	textColumn("dev_database_type", func(r *domain.Record) *string { return &r.DevDatabaseType }),
	textColumn("prod_database_type", func(r *domain.Record) *string { return &r.ProdDatabaseType }),
	textColumn("search_engine", func(r *domain.Record) *string { return &r.SearchEngine }),
	textColumn("message_broker", func(r *domain.Record) *string { return &r.MessageBroker }),
	textColumn("service_discovery_type", func(r *domain.Record) *string { return &r.ServiceDiscoveryType }),
	textColumn("build_tool", func(r *domain.Record) *string { return &r.BuildTool }),
	flagColumn("enable_swagger_codegen", func(r *domain.Record) **bool { return &r.EnableSwaggerCodegen }),
	textColumn("client_framework", func(r *domain.Record) *string { return &r.ClientFramework }),
	flagColumn("use_sass", func(r *domain.Record) **bool { return &r.UseSass }),
	textColumn("client_package_manager", func(r *domain.Record) *string { return &r.ClientPackageManager }),
	flagColumn("enable_translation", func(r *domain.Record) **bool { return &r.EnableTranslation }),
	textColumn("native_language", func(r *domain.Record) *string { return &r.NativeLanguage }),
	flagColumn("has_protractor", func(r *domain.Record) **bool { return &r.HasProtractor }),
	flagColumn("has_gatling", func(r *domain.Record) **bool { return &r.HasGatling }),
	flagColumn("has_cucumber", func(r *domain.Record) **bool { return &r.HasCucumber }),
	{
		name: "server_port",
		value: func(r *domain.Record) any {
			if r.ServerPort != nil {
				return int64(*r.ServerPort)
			}
			return nil
		},
		dest: func(r *domain.Record) any { return nullNumber{dst: &r.ServerPort} },
	},
	{
		name: "selected_languages",
		value: func(r *domain.Record) any {
			if r.SelectedLanguages == nil {
				return pq.Array([]string{})
			}
			return pq.Array(r.SelectedLanguages)
		},
		dest: func(r *domain.Record) any { return pq.Array(&r.SelectedLanguages) },
	},
}

// RecordColumns is the comma separated select list matching ScanRecord.
var RecordColumns = columnNames()

func columnNames() string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	return strings.Join(names, ", ")
}

func recordArgs(r *domain.Record) []any {
	args := make([]any, len(columns))
	for i, c := range columns {
		args[i] = c.value(r)
	}
	return args
}

// ScanRecord reads one row selected with RecordColumns.
func ScanRecord(s Scanner) (domain.Record, error) {
	var r domain.Record
	dest := make([]any, len(columns))
	for i, c := range columns {
		dest[i] = c.dest(&r)
	}
	if err := s.Scan(dest...); err != nil {
		return domain.Record{}, err
	}
	r.CreatedAt = r.CreatedAt.UTC()
	if r.SelectedLanguages == nil {
		r.SelectedLanguages = []string{}
	}
	return r, nil
}

type nullText struct{ dst *string }

func (n nullText) value() any {
	if *n.dst == "" {
		return nil
	}
	return *n.dst
}

func (n nullText) Scan(src any) error {
	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	*n.dst = ns.String
	return nil
}

type nullFlag struct{ dst **bool }

func (n nullFlag) Scan(src any) error {
	var nb sql.NullBool
	if err := nb.Scan(src); err != nil {
		return err
	}
	if !nb.Valid {
		*n.dst = nil
		return nil
	}
	v := nb.Bool
	*n.dst = &v
	return nil
}

type nullNumber struct{ dst **int }

func (n nullNumber) Scan(src any) error {
	var ni sql.NullInt64
	if err := ni.Scan(src); err != nil {
		return err
	}
	if !ni.Valid {
		*n.dst = nil
		return nil
	}
	v := int(ni.Int64)
	*n.dst = &v
	return nil
}
