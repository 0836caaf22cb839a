package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_Deterministic(t *testing.T) {
	assert.Equal(t, Derive("a", "b"), Derive("a", "b"))
	assert.Equal(t, PrincipalPool("alice"), PrincipalPool("alice"))
	assert.Equal(t, FeePool(), FeePool())
}

func TestDerive_SeedsAreLengthPrefixed(t *testing.T) {
	assert.NotEqual(t, Derive("ab", "c"), Derive("a", "bc"))
	assert.NotEqual(t, Derive("abc"), Derive("ab", "c"))
}

func TestDerive_DistinctRoles(t *testing.T) {
	seen := map[Address]string{}
	for name, a := range map[string]Address{
		"vault":                  UserVault("alice"),
		"pool":                   PrincipalPool("alice"),
		"wallet":                 Wallet("alice", "USDC"),
		"fee":                    FeePool(),
		"authority":              VaultAuthority(),
		"bob-pool":               PrincipalPool("bob"),
		"bob-wallet-other-asset": Wallet("bob", "EURC"),
	} {
		if prev, ok := seen[a]; ok {
			t.Fatalf("%s collides with %s", name, prev)
		}
		seen[a] = name
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(FeePool().String()))
	assert.ErrorIs(t, Validate("not-base58-0OIl"), ErrInvalidAddress)
	assert.ErrorIs(t, Validate("3mJr7AoUXx2Wqd"), ErrInvalidAddress)
}
