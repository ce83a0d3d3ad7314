package configs

import "github.com/spf13/viper"

type Conf struct {
	DBDriver   string `mapstructure:"DB_DRIVER"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisHost string `mapstructure:"REDIS_HOST"`
	RedisPort string `mapstructure:"REDIS_PORT"`

	AMQPUrl string `mapstructure:"AMQP_URL"`

	WebServerPort string `mapstructure:"WEB_SERVER_PORT"`
	OtelCollector string `mapstructure:"OTEL_COLLECTOR_ADDR"`

	GeocoderBaseURL   string `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderUserAgent string `mapstructure:"GEOCODER_USER_AGENT"`
	GeocoderLanguage  string `mapstructure:"GEOCODER_LANGUAGE"`
	GeocoderCountry   string `mapstructure:"GEOCODER_COUNTRY"`

	// Operating region bounding box. Defaults cover Abidjan.
	RegionMinLat float64 `mapstructure:"REGION_MIN_LAT"`
	RegionMaxLat float64 `mapstructure:"REGION_MAX_LAT"`
	RegionMinLon float64 `mapstructure:"REGION_MIN_LON"`
	RegionMaxLon float64 `mapstructure:"REGION_MAX_LON"`

	TrackingIntervalMs int `mapstructure:"TRACKING_INTERVAL_MS"`
}

func LoadConfig(path string) (*Conf, error) {
	var cfg *Conf

	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "GeoCourier/1.0")
	viper.SetDefault("GEOCODER_LANGUAGE", "fr")
	viper.SetDefault("GEOCODER_COUNTRY", "ci")
	viper.SetDefault("REGION_MIN_LAT", 5.0)
	viper.SetDefault("REGION_MAX_LAT", 5.4)
	viper.SetDefault("REGION_MIN_LON", -3.9)
	viper.SetDefault("REGION_MAX_LON", -3.5)
	viper.SetDefault("TRACKING_INTERVAL_MS", 15000)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
