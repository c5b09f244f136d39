package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectPath_Deterministic(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	path := ObjectPath(id, "case_report.html")
	assert.Equal(t, ObjectPath(id, "case_report.html"), path)
	assert.Equal(t, "6b/6ba7b810-9dad-11d1-80b4-00c04fd430c8_case_report.html", path)
}

func TestObjectPath_SanitizesFilename(t *testing.T) {
	id := uuid.New()

	path := ObjectPath(id, "Alex Turner/case report.html")
	assert.NotContains(t, path[3:], " ")
	assert.Equal(t, 1, strings.Count(path, "/"), "only the shard prefix separator survives")
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	st, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	id := uuid.New()
	content := "<html><body>report</body></html>"

	path, err := st.Upload(ctx, id, "case_report.html", strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, ObjectPath(id, "case_report.html"), path)

	rc, err := st.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))

	require.NoError(t, st.Delete(ctx, path))
	_, err = st.Download(ctx, path)
	assert.Error(t, err)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(StorageConfig{Type: "gopher"})
	assert.Error(t, err)
}
