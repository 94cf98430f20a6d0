package avatax

import "context"

// entityUseCodeLister is the slice of the client used by the entity-use
// code matcher. Tests substitute a stub.
type entityUseCodeLister interface {
	ListEntityUseCodes(ctx context.Context, code string) (*FetchResult[EntityUseCodeModel], error)
}

// matchEntityUseCode verifies a raw tax-exemption entity code against the
// provider's definitions. An absent code returns empty immediately with
// no remote call; an unrecognized code resolves to empty; a provider
// failure propagates to the caller.
func matchEntityUseCode(ctx context.Context, client entityUseCodeLister, raw *string) (string, error) {
	if raw == nil || *raw == "" {
		return "", nil
	}

	result, err := client.ListEntityUseCodes(ctx, *raw)
	if err != nil {
		return "", err
	}

	if len(result.Value) == 0 {
		return "", nil
	}

	return result.Value[0].Code, nil
}
