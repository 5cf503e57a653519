package configloader

import (
	"time"
)

const (
	defaultHandlerTimeout = 5 * time.Second
	defaultQueryTimeout   = 3 * time.Second
)

// bootstrap 对应 configs/config.yaml 的顶层结构。
// 时长字段以字符串表示（如 "5s"），归一化时解析。
type bootstrap struct {
	Server        bootstrapServer        `json:"server"`
	Data          bootstrapData          `json:"data"`
	Storage       bootstrapStorage       `json:"storage"`
	Observability bootstrapObservability `json:"observability"`
	Messaging     bootstrapMessaging     `json:"messaging"`
}

type bootstrapServer struct {
	HTTP struct {
		Network string `json:"network"`
		Addr    string `json:"addr"`
		Timeout string `json:"timeout"`
	} `json:"http"`
	JWT struct {
		ExpectedAudience string `json:"expected_audience"`
		SkipValidate     bool   `json:"skip_validate"`
		Required         bool   `json:"required"`
		HeaderKey        string `json:"header_key"`
	} `json:"jwt"`
	Handlers struct {
		Default string `json:"default"`
		Command string `json:"command"`
		Query   string `json:"query"`
	} `json:"handlers"`
	MetadataKeys []string `json:"metadata_keys"`
}

type bootstrapData struct {
	Postgres struct {
		DSN               string `json:"dsn"`
		MaxOpenConns      int    `json:"max_open_conns"`
		MinOpenConns      int    `json:"min_open_conns"`
		MaxConnLifetime   string `json:"max_conn_lifetime"`
		MaxConnIdleTime   string `json:"max_conn_idle_time"`
		HealthCheckPeriod string `json:"health_check_period"`
		Schema            string `json:"schema"`
		PreparedStmts     bool   `json:"prepared_stmts"`
		PoolMetrics       bool   `json:"pool_metrics"`
		Transaction       struct {
			DefaultIsolation string `json:"default_isolation"`
			DefaultTimeout   string `json:"default_timeout"`
			LockTimeout      string `json:"lock_timeout"`
			MaxRetries       int    `json:"max_retries"`
			MetricsEnabled   bool   `json:"metrics_enabled"`
		} `json:"transaction"`
	} `json:"postgres"`
}

type bootstrapStorage struct {
	Bucket           string `json:"bucket"`
	EmulatorEndpoint string `json:"emulator_endpoint"`
}

type bootstrapObservability struct {
	GlobalAttributes map[string]string `json:"global_attributes"`
	Tracing          struct {
		Enabled            bool              `json:"enabled"`
		Exporter           string            `json:"exporter"`
		Endpoint           string            `json:"endpoint"`
		Headers            map[string]string `json:"headers"`
		Insecure           bool              `json:"insecure"`
		SamplingRatio      float64           `json:"sampling_ratio"`
		BatchTimeout       string            `json:"batch_timeout"`
		ExportTimeout      string            `json:"export_timeout"`
		MaxQueueSize       int               `json:"max_queue_size"`
		MaxExportBatchSize int               `json:"max_export_batch_size"`
		Required           bool              `json:"required"`
		Attributes         map[string]string `json:"attributes"`
	} `json:"tracing"`
	Metrics struct {
		Enabled             bool              `json:"enabled"`
		Exporter            string            `json:"exporter"`
		Endpoint            string            `json:"endpoint"`
		Headers             map[string]string `json:"headers"`
		Insecure            bool              `json:"insecure"`
		Interval            string            `json:"interval"`
		DisableRuntimeStats bool              `json:"disable_runtime_stats"`
		Required            bool              `json:"required"`
		ResourceAttributes  map[string]string `json:"resource_attributes"`
		HTTPEnabled         bool              `json:"http_enabled"`
		IncludeHealth       bool              `json:"include_health"`
	} `json:"metrics"`
}

type bootstrapMessaging struct {
	Schema string `json:"schema"`
	PubSub struct {
		ProjectID           string `json:"project_id"`
		TopicID             string `json:"topic_id"`
		SubscriptionID      string `json:"subscription_id"`
		OrderingKeyEnabled  bool   `json:"ordering_key_enabled"`
		LoggingEnabled      bool   `json:"logging_enabled"`
		MetricsEnabled      bool   `json:"metrics_enabled"`
		EmulatorEndpoint    string `json:"emulator_endpoint"`
		PublishTimeout      string `json:"publish_timeout"`
		ExactlyOnceDelivery bool   `json:"exactly_once_delivery"`
		DeadLetterTopicID   string `json:"dead_letter_topic_id"`
		Receive             struct {
			NumGoroutines          int    `json:"num_goroutines"`
			MaxOutstandingMessages int    `json:"max_outstanding_messages"`
			MaxOutstandingBytes    int    `json:"max_outstanding_bytes"`
			MaxExtension           string `json:"max_extension"`
			MaxExtensionPeriod     string `json:"max_extension_period"`
		} `json:"receive"`
	} `json:"pubsub"`
	Outbox struct {
		BatchSize      int    `json:"batch_size"`
		TickInterval   string `json:"tick_interval"`
		InitialBackoff string `json:"initial_backoff"`
		MaxBackoff     string `json:"max_backoff"`
		MaxAttempts    int    `json:"max_attempts"`
		PublishTimeout string `json:"publish_timeout"`
		Workers        int    `json:"workers"`
		LockTTL        string `json:"lock_ttl"`
		LoggingEnabled *bool  `json:"logging_enabled"`
		MetricsEnabled *bool  `json:"metrics_enabled"`
	} `json:"outbox"`
	Inbox struct {
		SourceService  string `json:"source_service"`
		MaxConcurrency int    `json:"max_concurrency"`
		LoggingEnabled *bool  `json:"logging_enabled"`
		MetricsEnabled *bool  `json:"metrics_enabled"`
	} `json:"inbox"`
}

func fromBootstrap(b *bootstrap) RuntimeConfig {
	if b == nil {
		return RuntimeConfig{}
	}
	return RuntimeConfig{
		Server:        serverFromBootstrap(b.Server),
		Database:      databaseFromBootstrap(b.Data),
		Storage:       StorageConfig(b.Storage),
		Observability: observabilityFromBootstrap(b.Observability),
		Messaging:     messagingFromBootstrap(b.Messaging),
	}
}

func serverFromBootstrap(s bootstrapServer) ServerConfig {
	server := ServerConfig{
		Network: s.HTTP.Network,
		Address: s.HTTP.Addr,
		Timeout: parseDuration(s.HTTP.Timeout),
		JWT: ServerJWTConfig{
			ExpectedAudience: s.JWT.ExpectedAudience,
			SkipValidate:     s.JWT.SkipValidate,
			Required:         s.JWT.Required,
			HeaderKey:        firstNonEmpty(s.JWT.HeaderKey, "authorization"),
		},
		MetadataKeys: append([]string(nil), s.MetadataKeys...),
	}
	server.Handlers = HandlerTimeoutConfig{
		Default: firstNonZero(parseDuration(s.Handlers.Default), defaultHandlerTimeout),
		Command: firstNonZero(parseDuration(s.Handlers.Command), defaultHandlerTimeout),
		Query:   firstNonZero(parseDuration(s.Handlers.Query), defaultQueryTimeout),
	}
	return server
}

func databaseFromBootstrap(d bootstrapData) DatabaseConfig {
	pg := d.Postgres
	return DatabaseConfig{
		DSN:               pg.DSN,
		MaxOpenConns:      pg.MaxOpenConns,
		MinOpenConns:      pg.MinOpenConns,
		MaxConnLifetime:   parseDuration(pg.MaxConnLifetime),
		MaxConnIdleTime:   parseDuration(pg.MaxConnIdleTime),
		HealthCheckPeriod: parseDuration(pg.HealthCheckPeriod),
		Schema:            pg.Schema,
		PreparedStmts:     pg.PreparedStmts,
		PoolMetrics:       pg.PoolMetrics,
		Transaction: TransactionConfig{
			DefaultIsolation: pg.Transaction.DefaultIsolation,
			DefaultTimeout:   parseDuration(pg.Transaction.DefaultTimeout),
			LockTimeout:      parseDuration(pg.Transaction.LockTimeout),
			MaxRetries:       pg.Transaction.MaxRetries,
			MetricsEnabled:   pg.Transaction.MetricsEnabled,
		},
	}
}

func observabilityFromBootstrap(o bootstrapObservability) ObservabilityConfig {
	return ObservabilityConfig{
		GlobalAttributes: o.GlobalAttributes,
		Tracing: TracingConfig{
			Enabled:            o.Tracing.Enabled,
			Exporter:           o.Tracing.Exporter,
			Endpoint:           o.Tracing.Endpoint,
			Headers:            o.Tracing.Headers,
			Insecure:           o.Tracing.Insecure,
			SamplingRatio:      o.Tracing.SamplingRatio,
			BatchTimeout:       parseDuration(o.Tracing.BatchTimeout),
			ExportTimeout:      parseDuration(o.Tracing.ExportTimeout),
			MaxQueueSize:       o.Tracing.MaxQueueSize,
			MaxExportBatchSize: o.Tracing.MaxExportBatchSize,
			Required:           o.Tracing.Required,
			Attributes:         o.Tracing.Attributes,
		},
		Metrics: MetricsConfig{
			Enabled:             o.Metrics.Enabled,
			Exporter:            o.Metrics.Exporter,
			Endpoint:            o.Metrics.Endpoint,
			Headers:             o.Metrics.Headers,
			Insecure:            o.Metrics.Insecure,
			Interval:            parseDuration(o.Metrics.Interval),
			DisableRuntimeStats: o.Metrics.DisableRuntimeStats,
			Required:            o.Metrics.Required,
			ResourceAttributes:  o.Metrics.ResourceAttributes,
			GRPCEnabled:         o.Metrics.HTTPEnabled,
			GRPCIncludeHealth:   o.Metrics.IncludeHealth,
		},
	}
}

func messagingFromBootstrap(m bootstrapMessaging) MessagingConfig {
	cfg := MessagingConfig{
		Schema: m.Schema,
		PubSub: PubSubConfig{
			ProjectID:           m.PubSub.ProjectID,
			TopicID:             m.PubSub.TopicID,
			SubscriptionID:      m.PubSub.SubscriptionID,
			OrderingKeyEnabled:  m.PubSub.OrderingKeyEnabled,
			LoggingEnabled:      m.PubSub.LoggingEnabled,
			MetricsEnabled:      m.PubSub.MetricsEnabled,
			EmulatorEndpoint:    m.PubSub.EmulatorEndpoint,
			PublishTimeout:      parseDuration(m.PubSub.PublishTimeout),
			ExactlyOnceDelivery: m.PubSub.ExactlyOnceDelivery,
			DeadLetterTopicID:   m.PubSub.DeadLetterTopicID,
			Receive: PubSubReceiveConfig{
				NumGoroutines:          m.PubSub.Receive.NumGoroutines,
				MaxOutstandingMessages: m.PubSub.Receive.MaxOutstandingMessages,
				MaxOutstandingBytes:    m.PubSub.Receive.MaxOutstandingBytes,
				MaxExtension:           parseDuration(m.PubSub.Receive.MaxExtension),
				MaxExtensionPeriod:     parseDuration(m.PubSub.Receive.MaxExtensionPeriod),
			},
		},
		Outbox: OutboxPublisherConfig{
			BatchSize:      m.Outbox.BatchSize,
			TickInterval:   parseDuration(m.Outbox.TickInterval),
			InitialBackoff: parseDuration(m.Outbox.InitialBackoff),
			MaxBackoff:     parseDuration(m.Outbox.MaxBackoff),
			MaxAttempts:    m.Outbox.MaxAttempts,
			PublishTimeout: parseDuration(m.Outbox.PublishTimeout),
			Workers:        m.Outbox.Workers,
			LockTTL:        parseDuration(m.Outbox.LockTTL),
			LoggingEnabled: m.Outbox.LoggingEnabled,
			MetricsEnabled: m.Outbox.MetricsEnabled,
		},
		Inbox: InboxConfig{
			SourceService:  m.Inbox.SourceService,
			MaxConcurrency: m.Inbox.MaxConcurrency,
			LoggingEnabled: m.Inbox.LoggingEnabled,
			MetricsEnabled: m.Inbox.MetricsEnabled,
		},
	}
	return cfg
}

// parseDuration 解析字符串时长，空串或非法值返回零值。
func parseDuration(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}

func firstNonZero(values ...time.Duration) time.Duration {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func fillDefaults(rc *RuntimeConfig) {
	if rc.Server.Address == "" {
		rc.Server.Address = ":8080"
	}
	if rc.Server.Timeout <= 0 {
		rc.Server.Timeout = defaultHandlerTimeout
	}
}
