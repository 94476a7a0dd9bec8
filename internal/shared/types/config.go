package types

// Config represents the application configuration that can be loaded from a file.
// Values only apply to flags that were not set explicitly on the command line.
type Config struct {
	Group1           string   `json:"group1" yaml:"group1" toml:"group1"`
	Group2           string   `json:"group2" yaml:"group2" toml:"group2"`
	AssumeRole       string   `json:"assume_role" yaml:"assume_role" toml:"assume_role"`
	Granularity      string   `json:"granularity" yaml:"granularity" toml:"granularity"`
	ExcludeTypes     []string `json:"exclude_types" yaml:"exclude_types" toml:"exclude_types"`
	IncludeTypes     []string `json:"include_types" yaml:"include_types" toml:"include_types"`
	Regions          []string `json:"regions" yaml:"regions" toml:"regions"`
	Output           string   `json:"output" yaml:"output" toml:"output"`
	TitlePrefix      string   `json:"title_prefix" yaml:"title_prefix" toml:"title_prefix"`
	CostType         string   `json:"cost_type" yaml:"cost_type" toml:"cost_type"`
	Currency         string   `json:"currency" yaml:"currency" toml:"currency"`
	ExcludeZero      bool     `json:"exclude_zero" yaml:"exclude_zero" toml:"exclude_zero"`
	Combine          bool     `json:"combine" yaml:"combine" toml:"combine"`
	Webhook          string   `json:"webhook" yaml:"webhook" toml:"webhook"`
	WebhookParameter string   `json:"webhook_parameter" yaml:"webhook_parameter" toml:"webhook_parameter"`
	ReportName       string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType       []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir              string   `json:"dir" yaml:"dir" toml:"dir"`
	S3Bucket         string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket"`
	S3Prefix         string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix"`
}
