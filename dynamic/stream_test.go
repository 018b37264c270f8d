package dynamic_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poligras/dynamic"
)

func TestParseStreamArray(t *testing.T) {
	data := []byte(`[{"operation":"add","source":"1","target":"5"},{"op":"remove","u":"2","v":"6"}]`)

	updates, err := dynamic.ParseStream(data)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	require.Equal(t, dynamic.Update{Operation: dynamic.OpAdd, Source: "1", Target: "5"}, updates[0])
	require.Equal(t, dynamic.Update{Operation: dynamic.OpRemove, Source: "2", Target: "6"}, updates[1])
}

func TestParseStreamWrappedObject(t *testing.T) {
	data := []byte(`{"updates":[{"action":"insertion","from":"1","to":"2"}]}`)

	updates, err := dynamic.ParseStream(data)
	require.NoError(t, err)
	require.Equal(t, []dynamic.Update{{Operation: dynamic.OpAdd, Source: "1", Target: "2"}}, updates)
}

func TestParseStreamNumericEndpoints(t *testing.T) {
	data := []byte(`[{"type":"add","source":1,"target":2}]`)

	updates, err := dynamic.ParseStream(data)
	require.NoError(t, err)
	require.Equal(t, "1", updates[0].Source)
	require.Equal(t, "2", updates[0].Target)
}

// "Update stream rejection": an unknown operation token fails
// the entire batch.
func TestParseStreamUnknownOperationRejectsWholeBatch(t *testing.T) {
	data := []byte(`[{"operation":"add","source":"1","target":"2"},{"op":"toggle","u":"1","v":"2"}]`)

	_, err := dynamic.ParseStream(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}

func TestParseStreamRejectsUnrecognizedField(t *testing.T) {
	data := []byte(`[{"operation":"add","source":"1","target":"2","weight":5}]`)

	_, err := dynamic.ParseStream(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}

func TestParseStreamRejectsAmbiguousAlias(t *testing.T) {
	data := []byte(`[{"operation":"add","op":"add","source":"1","target":"2"}]`)

	_, err := dynamic.ParseStream(data)
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}

func TestParseStreamRejectsMalformedJSON(t *testing.T) {
	_, err := dynamic.ParseStream([]byte(`not json`))
	require.Error(t, err)
	require.True(t, errors.Is(err, dynamic.ErrUpdateStreamMalformed))
}
