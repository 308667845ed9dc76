package dynamodb

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	apperrors "freshtrack-backend/pkg/errors"
)

// translateError maps DynamoDB SDK failures onto the application error
// taxonomy. Conditional-check failures are handled at the call sites because
// their meaning depends on the condition.
func translateError(err error, operation string) error {
	var notFound *types.ResourceNotFoundException
	if errors.As(err, &notFound) {
		return apperrors.NewUnavailableError("dynamodb")
	}

	var throughput *types.ProvisionedThroughputExceededException
	if errors.As(err, &throughput) {
		return apperrors.NewUnavailableError("dynamodb")
	}

	var requestLimit *types.RequestLimitExceeded
	if errors.As(err, &requestLimit) {
		return apperrors.NewUnavailableError("dynamodb")
	}

	return apperrors.NewDatabaseError(operation, err)
}
