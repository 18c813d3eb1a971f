package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Database Database `envPrefix:"DB_"`
	Email    Email    `envPrefix:"EMAIL_"`
	Store    Store    `envPrefix:"STORE_"`

	// Shared admin password. It only flips a session flag and is not a security boundary.
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"theresa"`
	// Fallback notification address when the admin_email setting is unset.
	AdminEmail string `env:"ADMIN_EMAIL"`
}

type Database struct {
	Driver          string        `env:"DRIVER" envDefault:"sqlite"` // sqlite | mysql
	URL             string        `env:"URL" envDefault:"bakery.db"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"10"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"50"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"1h"`
}

type Email struct {
	BaseApiURL string        `env:"BASE_API_URL" envDefault:"https://api.resend.com"`
	APIKey     string        `env:"API_KEY"`
	From       string        `env:"FROM" envDefault:"Badass Bakery <onboarding@resend.dev>"`
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

type Store struct {
	Name      string `env:"NAME" envDefault:"Badass Bakery"`
	OwnerName string `env:"OWNER_NAME" envDefault:"Theresa"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

func (h HTTPServer) Address() string {
	return h.Host + ":" + h.Port
}
