package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

type describeRegionsAPI interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
}

// EC2RegionRepository lista as regiões habilitadas na conta.
type EC2RegionRepository struct {
	client describeRegionsAPI
}

// NewEC2RegionRepository cria um novo EC2RegionRepository.
func NewEC2RegionRepository(client describeRegionsAPI) *EC2RegionRepository {
	return &EC2RegionRepository{client: client}
}

// ListRegions returns the names of every region enabled for the account.
func (r *EC2RegionRepository) ListRegions(ctx context.Context) ([]string, error) {
	out, err := r.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{AllRegions: aws.Bool(false)})
	if err != nil {
		return nil, fmt.Errorf("could not describe regions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, region := range out.Regions {
		regions = append(regions, aws.ToString(region.RegionName))
	}
	return regions, nil
}
