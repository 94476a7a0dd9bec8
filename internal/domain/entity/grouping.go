package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diillson/aws-costbot-go/internal/shared/types"
)

// TagMarker suffix identifies a tag grouping token ("Proj$") and separates
// key from value in tag group keys returned by Cost Explorer ("Proj$alpha").
const TagMarker = "$"

// Cost Explorer dimension names used by the groupings.
const (
	DimensionLinkedAccount = "LINKED_ACCOUNT"
	DimensionService       = "SERVICE"
	DimensionRecordType    = "RECORD_TYPE"
	DimensionRegion        = "REGION"
)

// GroupKind enumerates the supported grouping axes.
type GroupKind int

const (
	GroupAccount GroupKind = iota + 1
	GroupAccountName
	GroupService
	GroupTag
)

// GroupSpec is a parsed grouping token: Account | AccountName | Service | Tag(key).
type GroupSpec struct {
	Kind   GroupKind
	TagKey string
}

// ParseGroupSpec converte o token do usuário (case-insensitive) em um GroupSpec.
// A chave da tag preserva a caixa original, pois tags AWS diferenciam maiúsculas.
func ParseGroupSpec(token string) (GroupSpec, error) {
	trimmed := strings.TrimSpace(token)
	if strings.HasSuffix(trimmed, TagMarker) {
		key := strings.TrimSuffix(trimmed, TagMarker)
		if key == "" {
			return GroupSpec{}, fmt.Errorf("%w: %q has an empty tag key", types.ErrInvalidGrouping, token)
		}
		return GroupSpec{Kind: GroupTag, TagKey: key}, nil
	}

	switch strings.ToLower(trimmed) {
	case "account":
		return GroupSpec{Kind: GroupAccount}, nil
	case "accountname":
		return GroupSpec{Kind: GroupAccountName}, nil
	case "service":
		return GroupSpec{Kind: GroupService}, nil
	}
	return GroupSpec{}, fmt.Errorf("%w: %q (use 'account', 'accountname', 'service' or 'tagname%s')",
		types.ErrInvalidGrouping, token, TagMarker)
}

// Query returns the wire-level grouping descriptor.
func (g GroupSpec) Query() DimensionQuery {
	switch g.Kind {
	case GroupTag:
		return DimensionQuery{Kind: QueryTag, Key: g.TagKey}
	case GroupService:
		return DimensionQuery{Kind: QueryDimension, Key: DimensionService}
	default:
		return DimensionQuery{Kind: QueryDimension, Key: DimensionLinkedAccount}
	}
}

// Header is the column label used in tabular exports.
func (g GroupSpec) Header() string {
	switch g.Kind {
	case GroupAccount:
		return "ACCOUNT"
	case GroupAccountName:
		return "ACCOUNT_NAME"
	case GroupService:
		return "SERVICE"
	default:
		return g.TagKey
	}
}

// DisplayName is the label used in markdown messages.
func (g GroupSpec) DisplayName() string {
	switch g.Kind {
	case GroupAccount, GroupAccountName:
		return "Account"
	case GroupService:
		return "Service"
	default:
		return g.TagKey
	}
}

// String returns the token form of the grouping.
func (g GroupSpec) String() string {
	switch g.Kind {
	case GroupAccount:
		return "account"
	case GroupAccountName:
		return "accountname"
	case GroupService:
		return "service"
	default:
		return g.TagKey + TagMarker
	}
}

// QueryKind is the Cost Explorer group definition type.
type QueryKind string

const (
	QueryDimension QueryKind = "DIMENSION"
	QueryTag       QueryKind = "TAG"
)

// DimensionQuery is the grouping descriptor sent to the billing API.
type DimensionQuery struct {
	Kind QueryKind
	Key  string
}

// ValueUniverse is the sorted, de-duplicated set of values a grouping takes in a window.
type ValueUniverse []string

// NewValueUniverse builds a sorted universe without duplicates.
func NewValueUniverse(values ...string) ValueUniverse {
	seen := make(map[string]struct{}, len(values))
	u := make(ValueUniverse, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		u = append(u, v)
	}
	sort.Strings(u)
	return u
}

// ValueMap substitui valores brutos (ex.: ID da conta) por nomes de exibição.
type ValueMap map[string]string

// NewValueMap copies pairs and rejects maps where two raw values share a display value.
func NewValueMap(pairs map[string]string) (ValueMap, error) {
	m := make(ValueMap, len(pairs))
	owner := make(map[string]string, len(pairs))
	for raw, display := range pairs {
		if prev, ok := owner[display]; ok {
			a, b := prev, raw
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("%w: %q and %q both map to %q", types.ErrNonInjectiveValueMap, a, b, display)
		}
		owner[display] = raw
		m[raw] = display
	}
	return m, nil
}

// Lookup maps a raw value, failing when the map has no entry for it.
func (m ValueMap) Lookup(raw string) (string, error) {
	display, ok := m[raw]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrValueMapMiss, raw)
	}
	return display, nil
}

// DimensionValue is one entry of a dimension listing.
type DimensionValue struct {
	Value      string
	Attributes map[string]string
}
