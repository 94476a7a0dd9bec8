package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile       string
	Start            string
	End              string
	Days             int
	Group1           string
	Group2           string
	AssumeRole       string
	Granularity      string
	ExcludeTypes     []string
	IncludeTypes     []string
	Regions          []string
	Output           string
	TitlePrefix      string
	CostType         string
	Currency         string
	ExcludeZero      bool
	Combine          bool
	RawValues        bool
	Webhook          string
	WebhookParameter string
	ReportName       string
	ReportType       []string
	Dir              string
	S3Bucket         string
	S3Prefix         string
	Quiet            bool
}
