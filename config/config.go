// Package config loads and validates the server configuration. Amount
// fields are decimal strings in display units and are scaled to integer
// base/quote units here, so nothing downstream ever parses a float.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"vulcan/domain/engine"
	"vulcan/domain/orderbook"
)

type Config struct {
	Server        ServerConfig  `yaml:"server"`
	Logging       LoggingConfig `yaml:"logging"`
	Journal       JournalConfig `yaml:"journal"`
	Outbox        OutboxConfig  `yaml:"outbox"`
	Archive       ArchiveConfig `yaml:"archive"`
	Kafka         KafkaConfig   `yaml:"kafka"`
	AuctionAdmins []string      `yaml:"auction_admins"`
	Pairs         []PairConfig  `yaml:"pairs"`
}

type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type JournalConfig struct {
	Dir         string `yaml:"dir"`
	SegmentSize int64  `yaml:"segment_size"`
}

type OutboxConfig struct {
	Dir string `yaml:"dir"`
}

type ArchiveConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type KafkaConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Brokers     []string `yaml:"brokers"`
	TradesTopic string   `yaml:"trades_topic"`
	EventsTopic string   `yaml:"events_topic"`
}

type PairConfig struct {
	ID                   string   `yaml:"id"`
	BaseSymbol           string   `yaml:"base_symbol"`
	QuoteSymbol          string   `yaml:"quote_symbol"`
	BaseDecimals         uint8    `yaml:"base_decimals"`
	QuoteDecimals        uint8    `yaml:"quote_decimals"`
	BaseDisplayDecimals  uint8    `yaml:"base_display_decimals"`
	QuoteDisplayDecimals uint8    `yaml:"quote_display_decimals"`
	MinTradeAmount       string   `yaml:"min_trade_amount"`
	MaxTradeAmount       string   `yaml:"max_trade_amount"`
	MakerRateBps         int64    `yaml:"maker_rate_bps"`
	TakerRateBps         int64    `yaml:"taker_rate_bps"`
	MaxSlippageBps       int64    `yaml:"max_slippage_bps"`
	AllowedTypes         []string `yaml:"allowed_types"`
	Mode                 uint8    `yaml:"mode"`
}

func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaults()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server:  ServerConfig{GRPCAddr: ":9090"},
		Logging: LoggingConfig{Level: "info", File: "logs/vulcan.log"},
		Journal: JournalConfig{Dir: "data/journal", SegmentSize: 64 << 20},
		Outbox:  OutboxConfig{Dir: "data/outbox"},
		Archive: ArchiveConfig{Enabled: true, Dir: "data/orders"},
		Kafka: KafkaConfig{
			TradesTopic: "vulcan.trades",
			EventsTopic: "vulcan.events",
		},
	}
}

func (c *Config) overrideWithEnv() {
	if v := os.Getenv("VULCAN_GRPC_ADDR"); v != "" {
		c.Server.GRPCAddr = v
	}
	if v := os.Getenv("VULCAN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VULCAN_KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
		c.Kafka.Enabled = true
	}
}

func (c *Config) Validate() error {
	if c.Journal.Dir == "" {
		return fmt.Errorf("journal.dir is required")
	}
	if c.Journal.SegmentSize <= 0 {
		return fmt.Errorf("journal.segment_size must be positive")
	}
	if c.Outbox.Dir == "" {
		return fmt.Errorf("outbox.dir is required")
	}
	if c.Archive.Enabled && c.Archive.Dir == "" {
		return fmt.Errorf("archive.dir is required when archive is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers is required when kafka is enabled")
	}
	for i := range c.Pairs {
		if err := c.Pairs[i].validate(); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
	}
	return nil
}

func (p *PairConfig) validate() error {
	if p.ID == "" || p.BaseSymbol == "" || p.QuoteSymbol == "" {
		return fmt.Errorf("id, base_symbol and quote_symbol are required")
	}
	if p.BaseDecimals > 18 || p.QuoteDecimals > 18 {
		return fmt.Errorf("decimals out of range")
	}
	if p.BaseDisplayDecimals > p.BaseDecimals || p.QuoteDisplayDecimals > p.QuoteDecimals {
		return fmt.Errorf("display decimals exceed evm decimals")
	}
	if p.MakerRateBps < 0 || p.MakerRateBps > 10_000 || p.TakerRateBps < 0 || p.TakerRateBps > 10_000 {
		return fmt.Errorf("fee rates out of range")
	}
	if engine.AuctionMode(p.Mode) > engine.ModeRestricted {
		return fmt.Errorf("mode %d out of range", p.Mode)
	}
	if _, err := p.scaled(p.MinTradeAmount, p.QuoteDecimals); err != nil {
		return fmt.Errorf("min_trade_amount: %w", err)
	}
	if _, err := p.scaled(p.MaxTradeAmount, p.QuoteDecimals); err != nil {
		return fmt.Errorf("max_trade_amount: %w", err)
	}
	return nil
}

// scaled converts a decimal display string into integer units at the given
// scale. An empty string means zero.
func (p *PairConfig) scaled(s string, decimals uint8) (int64, error) {
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	scaled := d.Shift(int32(decimals))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%s has more than %d decimals", s, decimals)
	}
	return scaled.IntPart(), nil
}

// Engine converts the YAML pair into the engine's scaled-integer config.
func (p *PairConfig) Engine() (engine.PairConfig, engine.AuctionMode, error) {
	min, err := p.scaled(p.MinTradeAmount, p.QuoteDecimals)
	if err != nil {
		return engine.PairConfig{}, 0, err
	}
	max, err := p.scaled(p.MaxTradeAmount, p.QuoteDecimals)
	if err != nil {
		return engine.PairConfig{}, 0, err
	}

	types := make([]orderbook.OrderType, 0, len(p.AllowedTypes))
	for _, name := range p.AllowedTypes {
		t, err := orderTypeByName(name)
		if err != nil {
			return engine.PairConfig{}, 0, err
		}
		types = append(types, t)
	}

	cfg := engine.PairConfig{
		ID:                   p.ID,
		BaseSymbol:           p.BaseSymbol,
		QuoteSymbol:          p.QuoteSymbol,
		BaseDecimals:         p.BaseDecimals,
		QuoteDecimals:        p.QuoteDecimals,
		BaseDisplayDecimals:  p.BaseDisplayDecimals,
		QuoteDisplayDecimals: p.QuoteDisplayDecimals,
		MinTradeAmount:       min,
		MaxTradeAmount:       max,
		MakerRateBps:         p.MakerRateBps,
		TakerRateBps:         p.TakerRateBps,
		MaxSlippageBps:       p.MaxSlippageBps,
		AllowedTypes:         engine.NewTypeSet(types...),
	}
	return cfg, engine.AuctionMode(p.Mode), nil
}

func orderTypeByName(name string) (orderbook.OrderType, error) {
	switch strings.ToUpper(name) {
	case "MARKET":
		return orderbook.Market, nil
	case "LIMIT":
		return orderbook.Limit, nil
	case "IOC":
		return orderbook.IOC, nil
	case "FOK":
		return orderbook.FOK, nil
	case "POSTONLY":
		return orderbook.PostOnly, nil
	default:
		return 0, fmt.Errorf("unknown order type %q", name)
	}
}
