package project

import (
	"path/filepath"
	"testing"

	"github.com/quantmind-br/resourcelist-go/internal/domain"
	"github.com/quantmind-br/resourcelist-go/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		file    File
		wantErr error
	}{
		{name: "cartridge only", file: File{Cartridge: true}},
		{name: "one list", file: File{Lists: []List{{Name: "orm"}}}},
		{name: "nothing", file: File{}, wantErr: ErrNoLists},
		{name: "blank name", file: File{Lists: []List{{Name: " "}}}, wantErr: ErrEmptyListName},
		{name: "bad style", file: File{Lists: []List{{Name: "a", EntryStyle: "dotted"}}}, wantErr: domain.ErrInvalidEntryStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.file.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFile_Register(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "shop")
	f := File{
		Project: "shop",
		Dir:     base,
		Lists: []List{
			{
				Name:          "templates",
				Include:       []string{"**/*.isml"},
				Exclude:       []string{"**/legacy/**"},
				FileExtension: "isml",
				FileName:      "resources/{project}/templates.resource",
				SourceSet:     "web",
				OutputDir:     "out/templates",
				EntryStyle:    "qualified",
			},
			{Name: "plain", Include: []string{"*.txt"}},
		},
	}

	reg := registry.New("build")
	require.NoError(t, f.Register(reg))
	assert.Equal(t, []string{"templates", "plain"}, reg.Names())

	tpl, err := reg.Get("templates")
	require.NoError(t, err)
	assert.Equal(t, []string{"**/*.isml"}, tpl.Includes)
	assert.Equal(t, []string{"**/legacy/**"}, tpl.Excludes)
	assert.Equal(t, "isml", tpl.FileExtension)
	assert.Equal(t, "web", tpl.SourceSet)
	assert.Equal(t, domain.EntryStyleQualified, tpl.EntryStyle)
	assert.Equal(t, filepath.Join(base, "out", "templates"), tpl.OutputDir)
	assert.Equal(t,
		filepath.Join(base, "out", "templates", "resources", "shop", "templates.resource"),
		tpl.ManifestPath(f.Project))

	plain, err := reg.Get("plain")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSourceSet, plain.SourceSet)
	assert.Equal(t, "plain.resource", plain.FileName)
	assert.Equal(t, filepath.Join("build", "generated", "resourcelist", "plain"), plain.OutputDir)
	assert.NoError(t, reg.Validate())
}

func TestFile_Register_Cartridge(t *testing.T) {
	f := File{
		Cartridge: true,
		Lists:     []List{{Name: "orm", Include: []string{"model/*.orm"}}},
	}

	reg := registry.New("build")
	require.NoError(t, f.Register(reg))

	assert.Equal(t, []string{"orm", registry.PresetPipelets}, reg.Names())
	orm, err := reg.Get("orm")
	require.NoError(t, err)
	assert.Equal(t, []string{"model/*.orm"}, orm.Includes)
}

func TestFile_Register_Duplicate(t *testing.T) {
	f := File{Lists: []List{{Name: "a"}, {Name: "a"}}}

	err := f.Register(registry.New("build"))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
}

func TestFile_SourceRoot(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "work", "shop")
	abs := filepath.Join(string(filepath.Separator), "abs", "java")
	f := File{
		Dir: base,
		SourceRoots: map[string]string{
			"main":  "src/main/java",
			"other": abs,
			"blank": "",
		},
	}

	root, ok := f.SourceRoot("main")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(base, "src", "main", "java"), root)

	root, ok = f.SourceRoot("other")
	assert.True(t, ok)
	assert.Equal(t, abs, root)

	_, ok = f.SourceRoot("blank")
	assert.False(t, ok)

	_, ok = f.SourceRoot("missing")
	assert.False(t, ok)
}
