package abi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Catalogue order
// ---------------------------------------------------------------------------

func TestCatalogue_BuiltinOrder(t *testing.T) {
	defs := Catalogue()
	require.GreaterOrEqual(t, len(defs), 6)
	assert.Equal(t, "ERC20", defs[0].Name)
	assert.Equal(t, "WETH", defs[1].Name)
	assert.Equal(t, "ERC721", defs[2].Name)
	assert.Equal(t, "Safe", defs[3].Name)
	assert.Equal(t, "SmartAccount", defs[4].Name)
	assert.Equal(t, "Multicall", defs[5].Name)
}

func TestCatalogue_ReturnsFreshSlice(t *testing.T) {
	a := Catalogue()
	a[0] = Definition{Name: "clobbered"}
	assert.Equal(t, "ERC20", Catalogue()[0].Name)
}

func TestRegister_AppendsAfterBuiltins(t *testing.T) {
	before := len(Catalogue())
	Register(Definition{Name: "CustomVault"})
	t.Cleanup(func() { registered = registered[:len(registered)-1] })

	defs := Catalogue()
	require.Len(t, defs, before+1)
	assert.Equal(t, "CustomVault", defs[len(defs)-1].Name)
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func TestLookup_Builtin(t *testing.T) {
	def, ok := Lookup("Safe")
	require.True(t, ok)
	assert.Equal(t, "Safe", def.Name)
	assert.NotEmpty(t, def.Functions())
}

func TestLookup_Missing(t *testing.T) {
	_, ok := Lookup("NoSuchInterface")
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Built-in definitions
// ---------------------------------------------------------------------------

func TestBuiltins_AllEntriesAreFunctions(t *testing.T) {
	for _, def := range builtinCatalogue() {
		fns := def.Functions()
		assert.NotEmpty(t, fns, "%s should declare functions", def.Name)
		for _, fn := range fns {
			assert.NotEmpty(t, fn.Name, "%s has an unnamed function", def.Name)
		}
	}
}

func TestBuiltins_SafeExecTransactionShape(t *testing.T) {
	def, ok := Lookup("Safe")
	require.True(t, ok)

	var exec *Entry
	for i, fn := range def.Functions() {
		if fn.Name == "execTransaction" {
			fns := def.Functions()
			exec = &fns[i]
			break
		}
	}
	require.NotNil(t, exec)
	require.Len(t, exec.Inputs, 10)
	assert.Equal(t, "to", exec.Inputs[0].Name)
	assert.Equal(t, "value", exec.Inputs[1].Name)
	assert.Equal(t, "data", exec.Inputs[2].Name)
}

func TestBuiltins_MulticallAggregateUsesTuples(t *testing.T) {
	def, ok := Lookup("Multicall")
	require.True(t, ok)

	for _, fn := range def.Functions() {
		if fn.Name != "aggregate" {
			continue
		}
		require.Len(t, fn.Inputs, 1)
		assert.Equal(t, "tuple[]", fn.Inputs[0].Type)
		assert.NotEmpty(t, fn.Inputs[0].Components)
		return
	}
	t.Fatal("aggregate not found in Multicall definition")
}
