package registry

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefine_Defaults(t *testing.T) {
	reg := New("build")

	cfg, err := reg.Define("my list")
	require.NoError(t, err)

	assert.Equal(t, "my list", cfg.Name)
	assert.Equal(t, domain.DefaultSourceSet, cfg.SourceSet)
	assert.Equal(t, "my_list.resource", cfg.FileName)
	assert.Equal(t, filepath.Join("build", "generated", "resourcelist", "my_list"), cfg.OutputDir)
	assert.Empty(t, cfg.FileExtension)
	assert.Empty(t, cfg.Includes)
	assert.Empty(t, cfg.Excludes)
	assert.Equal(t, domain.EntryStylePath, cfg.Style())
}

func TestDefine_Errors(t *testing.T) {
	reg := New("build")
	_, err := reg.Define("orm")
	require.NoError(t, err)

	tests := []struct {
		name    string
		list    string
		wantErr error
	}{
		{name: "duplicate", list: "orm", wantErr: domain.ErrDuplicateName},
		{name: "empty", list: "", wantErr: domain.ErrEmptyName},
		{name: "blank", list: "   ", wantErr: domain.ErrEmptyName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := reg.Define(tt.list)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 1, reg.Len())
}

func TestDefine_DuplicateNamesList(t *testing.T) {
	reg := New("build")
	_, err := reg.Define("orm")
	require.NoError(t, err)

	_, err = reg.Define("orm")
	var listErr *domain.ListError
	require.True(t, errors.As(err, &listErr))
	assert.Equal(t, "orm", listErr.List)
}

func TestGet(t *testing.T) {
	reg := New("build")
	defined, err := reg.Define("pipelets")
	require.NoError(t, err)
	defined.Include("**/*.xml")

	got, err := reg.Get("pipelets")
	require.NoError(t, err)
	assert.Same(t, defined, got)
	assert.Equal(t, []string{"**/*.xml"}, got.Includes)

	_, err = reg.Get("missing")
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestAll_InsertionOrderAndRestartable(t *testing.T) {
	reg := New("build")
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := reg.Define(name)
		require.NoError(t, err)
	}

	collect := func() []string {
		var names []string
		for cfg := range reg.All() {
			names = append(names, cfg.Name)
		}
		return names
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, collect())
	assert.Equal(t, collect(), collect())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, reg.Names())
	assert.Equal(t, 3, reg.Len())
}

func TestAll_EarlyBreak(t *testing.T) {
	reg := New("build")
	for _, name := range []string{"a", "b", "c"} {
		_, err := reg.Define(name)
		require.NoError(t, err)
	}

	count := 0
	for range reg.All() {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestAll_Empty(t *testing.T) {
	reg := New("build")
	for range reg.All() {
		t.Fatal("empty registry must not yield")
	}
	assert.Empty(t, reg.Names())
}

func TestSelect(t *testing.T) {
	reg := New("build")
	for _, name := range []string{"orm", "pipelets", "templates"} {
		_, err := reg.Define(name)
		require.NoError(t, err)
	}

	t.Run("no names selects all", func(t *testing.T) {
		lists, err := reg.Select()
		require.NoError(t, err)
		require.Len(t, lists, 3)
		assert.Equal(t, "orm", lists[0].Name)
	})

	t.Run("requested order and dedupe", func(t *testing.T) {
		lists, err := reg.Select("templates", "orm", "templates")
		require.NoError(t, err)
		require.Len(t, lists, 2)
		assert.Equal(t, "templates", lists[0].Name)
		assert.Equal(t, "orm", lists[1].Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := reg.Select("orm", "nope")
		assert.ErrorIs(t, err, domain.ErrListNotFound)
	})
}

func TestValidate(t *testing.T) {
	reg := New("build")
	cfg, err := reg.Define("orm")
	require.NoError(t, err)

	assert.ErrorIs(t, reg.Validate(), domain.ErrNoPatterns)

	cfg.Include("**/*.orm")
	assert.NoError(t, reg.Validate())
}

func TestConcurrentDefine(t *testing.T) {
	reg := New("build")

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = reg.Define("shared")
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrDuplicateName)
			failures++
		}
	}
	assert.Equal(t, 19, failures)
	assert.Equal(t, 1, reg.Len())
}

func TestCheckManifests(t *testing.T) {
	t.Run("distinct defaults", func(t *testing.T) {
		reg := New("build")
		for _, name := range []string{"orm", "pipelets", "xml"} {
			_, err := reg.Define(name)
			require.NoError(t, err)
		}
		assert.NoError(t, reg.CheckManifests("shop"))
	})

	t.Run("space and underscore collide", func(t *testing.T) {
		reg := New("build")
		_, err := reg.Define("my list")
		require.NoError(t, err)
		_, err = reg.Define("my_list")
		require.NoError(t, err)

		err = reg.CheckManifests("shop")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrManifestConflict)

		var listErr *domain.ListError
		require.True(t, errors.As(err, &listErr))
		assert.Equal(t, "my_list", listErr.List)
		assert.Contains(t, err.Error(), `"my list"`)
	})

	t.Run("shared file name after placeholder expansion", func(t *testing.T) {
		reg := New("build")
		a, err := reg.Define("a")
		require.NoError(t, err)
		b, err := reg.Define("b")
		require.NoError(t, err)

		a.OutputDir, a.FileName = "out", "{project}.resource"
		b.OutputDir, b.FileName = "out/", "shop.resource"

		assert.ErrorIs(t, reg.CheckManifests("shop"), domain.ErrManifestConflict)
		assert.NoError(t, reg.CheckManifests(""), "different projects expand differently")
	})
}
