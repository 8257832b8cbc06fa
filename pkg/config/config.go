package config

import "time"

// Config holds every tunable of the pitch binary. Values come from defaults,
// then CLUBOS_* environment variables, and are validated before use.
type Config struct {
	Offer    OfferConfig    `koanf:"offer"    validate:"required"`
	Carousel CarouselConfig `koanf:"carousel" validate:"required"`
	Wheel    WheelConfig    `koanf:"wheel"    validate:"required"`
	Demo     DemoConfig     `koanf:"demo"     validate:"required"`
	Webhook  WebhookConfig  `koanf:"webhook"`
	Log      LogConfig      `koanf:"log"`
}

// OfferConfig controls the launch-pricing countdown.
type OfferConfig struct {
	Duration       time.Duration `koanf:"duration"        validate:"gt=0" env:"OFFER_DURATION"`
	FollowupDelay  time.Duration `koanf:"followup_delay"  validate:"gt=0" env:"OFFER_FOLLOWUP_DELAY"`
	FullPrice      int           `koanf:"full_price"      validate:"gt=0" env:"OFFER_FULL_PRICE"`
	LaunchPrice    int           `koanf:"launch_price"    validate:"gt=0" env:"OFFER_LAUNCH_PRICE"`
	MonthlyHosting int           `koanf:"monthly_hosting" validate:"gte=0"`
}

// CarouselConfig controls the feature carousel.
type CarouselConfig struct {
	Interval       time.Duration `koanf:"interval"        validate:"gt=0" env:"CAROUSEL_INTERVAL"`
	SwipeThreshold int           `koanf:"swipe_threshold" validate:"gt=0" env:"CAROUSEL_SWIPE_THRESHOLD"`
}

// WheelConfig controls wheel picker timing and geometry.
type WheelConfig struct {
	SettleDebounce       time.Duration `koanf:"settle_debounce"       validate:"gt=0" env:"WHEEL_SETTLE_DEBOUNCE"`
	SnapDuration         time.Duration `koanf:"snap_duration"         validate:"gt=0" env:"WHEEL_SNAP_DURATION"`
	ProgrammaticDuration time.Duration `koanf:"programmatic_duration" validate:"gt=0" env:"WHEEL_PROGRAMMATIC_DURATION"`
	ItemHeight           int           `koanf:"item_height"           validate:"gt=0" env:"WHEEL_ITEM_HEIGHT"`
}

// DemoConfig controls the interactive demo dashboard.
type DemoConfig struct {
	DefaultRole string `koanf:"default_role" validate:"required" env:"DEMO_DEFAULT_ROLE"`
	ClubName    string `koanf:"club_name"    validate:"required" env:"DEMO_CLUB_NAME"`
}

// WebhookConfig controls the outbound decision notification.
type WebhookConfig struct {
	URL     string        `koanf:"url"     validate:"omitempty,url" env:"WEBHOOK_URL"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"          env:"WEBHOOK_TIMEOUT"`
}

// LogConfig controls logging defaults (overridable by CLI flags).
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error" env:"LOG_LEVEL"`
	JSON  bool   `koanf:"json"                                         env:"LOG_JSON"`
}

// Default returns the built-in configuration. The timing constants mirror the
// production web dashboard so the terminal demo settles and animates the same
// way.
func Default() *Config {
	return &Config{
		Offer: OfferConfig{
			Duration:       72 * time.Hour,
			FollowupDelay:  1800 * time.Millisecond,
			FullPrice:      1000,
			LaunchPrice:    700,
			MonthlyHosting: 30,
		},
		Carousel: CarouselConfig{
			Interval:       5 * time.Second,
			SwipeThreshold: 50,
		},
		Wheel: WheelConfig{
			SettleDebounce:       80 * time.Millisecond,
			SnapDuration:         200 * time.Millisecond,
			ProgrammaticDuration: 300 * time.Millisecond,
			ItemHeight:           32,
		},
		Demo: DemoConfig{
			DefaultRole: "super_admin",
			ClubName:    "Metaverse Club OS",
		},
		Webhook: WebhookConfig{
			URL:     "",
			Timeout: 5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
	}
}
