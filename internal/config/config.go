package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Database Database `koanf:"db"`
	Session  Session  `koanf:"session"`
	Web      Web      `koanf:"web"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Database struct {
	Path string `koanf:"path"`
}

type Session struct {
	// TTL is the server-side session lifetime. The cookie itself carries
	// no Max-Age, so the browser drops it when the session ends.
	TTL time.Duration `koanf:"ttl"`
}

type Web struct {
	TemplateDir  string `koanf:"templatedir"`
	StaticDir    string `koanf:"staticdir"`
	SecureCookie bool   `koanf:"securecookie"`
}

// Load builds the application configuration from defaults, an optional
// YAML file at path, and FINANCE_-prefixed environment variables, in
// that order of precedence (later sources win).
func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8080",
		},
		Database: Database{
			Path: "finance.db",
		},
		Session: Session{
			TTL: 7 * 24 * time.Hour,
		},
		Web: Web{
			TemplateDir: "web/templates",
			StaticDir:   "web/static",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config defaults: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "FINANCE_",
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "FINANCE_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
