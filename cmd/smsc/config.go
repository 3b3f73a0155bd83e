package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	smsc "github.com/brandshopru/smsc-go"
	"github.com/brandshopru/smsc-go/internal/api"
)

// Config is the CLI configuration, read from smsc.yaml and SMSC_* variables.
type Config struct {
	Login         string        `mapstructure:"login"`
	Password      string        `mapstructure:"password"`
	MethodPost    bool          `mapstructure:"method_post"`
	HTTPS         bool          `mapstructure:"https"`
	Charset       string        `mapstructure:"charset"`
	EmailSender   string        `mapstructure:"email_sender"`
	Host          string        `mapstructure:"host"`
	Timeout       time.Duration `mapstructure:"timeout"`
	HistoryWindow time.Duration `mapstructure:"history_window"`

	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
}

func (c Config) String() string {
	return fmt.Sprintf("{login:%s, password:{hidden}, host:%s, https:%t, method_post:%t, charset:%s, timeout:%s, email_sender:%s, smtp:%s:%d}",
		c.Login, c.Host, c.HTTPS, c.MethodPost, c.Charset, c.Timeout, c.EmailSender, c.SMTPHost, c.SMTPPort)
}

// Options converts the configuration into client options.
func (c Config) Options() []smsc.Option {
	opts := []smsc.Option{
		smsc.WithHTTPS(c.HTTPS),
		smsc.WithMethodPost(c.MethodPost),
		smsc.WithCharset(smsc.Charset(c.Charset)),
		smsc.WithHost(c.Host),
		smsc.WithTimeout(c.Timeout),
		smsc.WithSMTP(c.SMTPHost, c.SMTPPort, c.SMTPUser, c.SMTPPassword),
	}
	if c.EmailSender != "" {
		opts = append(opts, smsc.WithEmailSender(c.EmailSender))
	}
	if c.HistoryWindow > 0 {
		opts = append(opts, smsc.WithHistoryWindow(c.HistoryWindow))
	}
	return opts
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("login", "")
	v.SetDefault("password", "")
	v.SetDefault("method_post", false)
	v.SetDefault("https", true)
	v.SetDefault("charset", string(smsc.CharsetUTF8))
	v.SetDefault("email_sender", "")
	v.SetDefault("host", api.DefaultHost)
	v.SetDefault("timeout", api.DefaultTimeout)
	v.SetDefault("history_window", time.Duration(0))
	v.SetDefault("smtp_host", "localhost")
	v.SetDefault("smtp_port", 25)
	v.SetDefault("smtp_user", "")
	v.SetDefault("smtp_password", "")
}

// loadDotEnv loads variables from a .env file when one exists.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to load %s: %w", path, err)
	}
	return nil
}

// readConfig reads configFile, or smsc.yaml from the usual places when it is
// empty. A missing default file is not an error.
func readConfig(v *viper.Viper, configFile string) (Config, error) {
	setDefaults(v)
	v.SetEnvPrefix("SMSC")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("smsc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/smsc")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to parse config: %w", err)
	}

	if config.Login == "" || config.Password == "" {
		return Config{}, fmt.Errorf("invalid configuration %s: login and password are required", config)
	}
	return config, nil
}
