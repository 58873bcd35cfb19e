package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	SiteURL     string `env:"SITE_URL" envDefault:"https://facade.com"`
	ShopEmail   string `env:"SHOP_EMAIL"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"facade.db"`

	// SeedInventory upserts a default inventory record per catalog product
	// on startup. Existing records are left untouched.
	SeedInventory bool `env:"SEED_INVENTORY" envDefault:"false"`

	EmailJS    EmailJS    `envPrefix:"EMAILJS_"`
	Cloudinary Cloudinary `envPrefix:"CLOUDINARY_"`
}

type EmailJS struct {
	BaseApiURL         string `env:"BASE_API_URL" envDefault:"https://api.emailjs.com"`
	ServiceID          string `env:"SERVICE_ID"`
	PublicKey          string `env:"PUBLIC_KEY"`
	PrivateKey         string `env:"PRIVATE_KEY"`
	CustomerTemplateID string `env:"CUSTOMER_TEMPLATE_ID"`
	ShopTemplateID     string `env:"SHOP_TEMPLATE_ID"`
}

type Cloudinary struct {
	BaseApiURL string `env:"BASE_API_URL" envDefault:"https://api.cloudinary.com"`
	CloudName  string `env:"CLOUD_NAME"`
	APIKey     string `env:"API_KEY"`
	APISecret  string `env:"API_SECRET"`
	Folder     string `env:"FOLDER" envDefault:"payment-slips"`
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
