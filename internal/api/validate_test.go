package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func method(name string, params ...Param) Method {
	return Method{Name: name, Params: append([]Param{{Name: "self"}}, params...)}
}

func withDefault(name string) Param {
	return Param{Name: name, Default: &DefaultValue{}}
}

func TestValidate_CleanMethod(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "x"},
		withDefault("color"),
		Param{Name: "args", Kind: KindVarPositional},
		Param{Name: "style", Kind: KindKeywordOnly},
		Param{Name: "kwargs", Kind: KindVarKeyword},
	)})

	diags := Validate(set)
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestValidate_DuplicateParam(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "x"},
		Param{Name: "x"},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "duplicate_param", diags.Errors[0].Code)
	assert.Equal(t, "plot", diags.Errors[0].Method)
}

func TestValidate_DuplicateMethod(t *testing.T) {
	set := NewMethodSet([]Method{method("plot"), method("plot")})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "duplicate_method", diags.Errors[0].Code)
}

func TestValidate_KindOrder(t *testing.T) {
	// **kwargs before a positional parameter is malformed.
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "kwargs", Kind: KindVarKeyword},
		Param{Name: "x"},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "param_kind_order", diags.Errors[0].Code)
}

func TestValidate_MultipleVarKeyword(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "kwargs", Kind: KindVarKeyword},
		Param{Name: "extra", Kind: KindVarKeyword},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())

	codes := make([]string, 0, len(diags.Errors))
	for _, e := range diags.Errors {
		codes = append(codes, e.Code)
	}

	assert.Contains(t, codes, "multiple_var_keyword")
}

func TestValidate_NonDefaultAfterDefault(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		withDefault("x"),
		Param{Name: "y"},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "non_default_after_default", diags.Errors[0].Code)
	assert.Equal(t, "y", diags.Errors[0].Param)
}

func TestValidate_KeywordOnlyExemptFromDefaultRule(t *testing.T) {
	set := NewMethodSet([]Method{method("bar",
		withDefault("width"),
		Param{Name: "align", Kind: KindKeywordOnly},
	)})

	assert.True(t, Validate(set).IsValid())
}

func TestValidate_VarParamWithDefault(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "args", Kind: KindVarPositional, Default: &DefaultValue{}},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "var_param_with_default", diags.Errors[0].Code)
}

func TestValidate_UnconventionalNamesWarn(t *testing.T) {
	set := NewMethodSet([]Method{method("barbs",
		Param{Name: "values", Kind: KindVarPositional},
		Param{Name: "kw", Kind: KindVarKeyword},
	)})

	diags := Validate(set)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 2)
	assert.Equal(t, "unconventional_var_positional", diags.Warnings[0].Code)
	assert.Equal(t, "unconventional_var_keyword", diags.Warnings[1].Code)
}

func TestValidate_InvalidIdentifier(t *testing.T) {
	set := NewMethodSet([]Method{method("plot",
		Param{Name: "not valid"},
	)})

	diags := Validate(set)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "invalid_param_name", diags.Errors[0].Code)
}
