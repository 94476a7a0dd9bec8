package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type getParameterAPI interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSMParameterRepository reads parameters from the Systems Manager parameter store.
type SSMParameterRepository struct {
	client getParameterAPI
}

// NewSSMParameterRepository cria um novo SSMParameterRepository.
func NewSSMParameterRepository(client getParameterAPI) *SSMParameterRepository {
	return &SSMParameterRepository{client: client}
}

// GetSecureString returns the decrypted value of a parameter.
func (r *SSMParameterRepository) GetSecureString(ctx context.Context, name string) (string, error) {
	out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if out.Parameter == nil {
		return "", nil
	}
	return aws.ToString(out.Parameter.Value), nil
}
