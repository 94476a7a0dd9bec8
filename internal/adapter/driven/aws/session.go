package aws

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials/stscreds"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// RoleSessionName identifica as sessões criadas ao assumir a role do Cost Explorer.
const RoleSessionName = "MsTeamsCostBot"

// costExplorerRegion é a única região que atende a API do Cost Explorer.
const costExplorerRegion = "us-east-1"

// Session holds the credentials of one invocation and caches service clients.
// Only the Cost Explorer client uses the assumed role; parameter store, S3 and
// EC2 calls keep the ambient credentials.
type Session struct {
	cfg         aws.Config
	billingCfg  aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewSession loads the default credential chain. When assumeRole is set the
// billing client gets credentials from sts:AssumeRole on that role.
func NewSession(ctx context.Context, assumeRole string) (*Session, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = costExplorerRegion
	}

	billingCfg := cfg.Copy()
	if assumeRole != "" {
		provider := stscreds.NewAssumeRoleProvider(sts.NewFromConfig(cfg), assumeRole,
			func(o *stscreds.AssumeRoleOptions) {
				o.RoleSessionName = RoleSessionName
			})
		billingCfg.Credentials = aws.NewCredentialsCache(provider)
	}

	return &Session{
		cfg:         cfg,
		billingCfg:  billingCfg,
		clientCache: make(map[string]interface{}),
	}, nil
}

func (s *Session) getServiceClient(region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s", region, service)

	s.mu.Lock()
	defer s.mu.Unlock()
	if client, ok := s.clientCache[cacheKey]; ok {
		return client, nil
	}

	regionalCfg := s.cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "costexplorer":
		billingCfg := s.billingCfg.Copy()
		billingCfg.Region = costExplorerRegion
		client = costexplorer.NewFromConfig(billingCfg)
	case "ec2":
		client = ec2.NewFromConfig(regionalCfg)
	case "s3":
		client = s3.NewFromConfig(regionalCfg)
	case "ssm":
		client = ssm.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	s.clientCache[cacheKey] = client
	return client, nil
}

// CostExplorer returns the billing repository bound to this session.
func (s *Session) CostExplorer() (*CostExplorerRepository, error) {
	client, err := s.getServiceClient("", "costexplorer")
	if err != nil {
		return nil, err
	}
	return NewCostExplorerRepository(client.(*costexplorer.Client)), nil
}

// Regions returns the region repository bound to this session.
func (s *Session) Regions() (*EC2RegionRepository, error) {
	client, err := s.getServiceClient("", "ec2")
	if err != nil {
		return nil, err
	}
	return NewEC2RegionRepository(client.(*ec2.Client)), nil
}

// Archive returns the S3 archive repository bound to this session.
func (s *Session) Archive() (*S3ArchiveRepository, error) {
	client, err := s.getServiceClient("", "s3")
	if err != nil {
		return nil, err
	}
	return NewS3ArchiveRepository(client.(*s3.Client)), nil
}

// Parameters returns the parameter store repository bound to this session.
func (s *Session) Parameters() (*SSMParameterRepository, error) {
	client, err := s.getServiceClient("", "ssm")
	if err != nil {
		return nil, err
	}
	return NewSSMParameterRepository(client.(*ssm.Client)), nil
}
