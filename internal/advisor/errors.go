package advisor

import "errors"

// Domain outcomes reported to callers. Both are deterministic functions of
// the input and the catalog snapshot, so retrying never helps.
var (
	// ErrNoSuitableAssets means the eligibility filter produced an empty set
	ErrNoSuitableAssets = errors.New("no suitable assets for risk profile")

	// ErrUnknownAsset means the requested symbol is absent from the catalog
	ErrUnknownAsset = errors.New("unknown asset")
)
