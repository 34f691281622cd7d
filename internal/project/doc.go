// Package project loads resource-list project files. A project file declares
// the named lists of one project, optional source-root overrides and whether
// the cartridge presets apply.
//
// # Project File Format
//
// Project files can be written in YAML or JSON format:
//
//	project: mycartridge
//	cartridge: true
//	source_roots:
//	  main: src/main/java
//	lists:
//	  - name: templates
//	    include: ["**/*.isml"]
//	    exclude: ["**/legacy/**"]
//	    file_extension: isml
//	    file_name: "resources/{project}/templates.resource"
//
// # Usage
//
//	loader := project.NewLoader(nil)
//	file, err := loader.Load("resourcelist.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg := registry.New(buildDir)
//	if err := file.Register(reg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrNoLists: the file defines no lists and no cartridge presets
//   - ErrEmptyListName: a list is missing its name
//   - ErrInvalidFormat: file is not valid YAML/JSON
//   - ErrFileNotFound: project file does not exist
//   - ErrUnsupportedExt: unsupported file extension
package project
