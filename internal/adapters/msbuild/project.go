package msbuild

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// projectFile mirrors the subset of the MSBuild project XML schema the
// scanner cares about.
type projectFile struct {
	XMLName        xml.Name        `xml:"Project"`
	PropertyGroups []propertyGroup `xml:"PropertyGroup"`
	ItemGroups     []itemGroup     `xml:"ItemGroup"`
}

type propertyGroup struct {
	AssemblyName string `xml:"AssemblyName"`
}

type itemGroup struct {
	ProjectReferences []reference `xml:"ProjectReference"`
	PackageReferences []reference `xml:"PackageReference"`
}

type reference struct {
	Include string `xml:"Include,attr"`
}

// project is one parsed build unit file, before reference resolution.
type project struct {
	path        string   // path of the project file as discovered
	identifier  string   // declared assembly name, else the file stem
	projectRefs []string // referenced project file paths as written
	packageRefs []string // referenced package identifiers
}

// parseProject reads and decodes a single project file.
func parseProject(path string) (*project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read project file")
	}

	var file projectFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse project file"), "path", path)
	}

	p := &project{path: path, identifier: stem(path)}
	for _, group := range file.PropertyGroups {
		if name := strings.TrimSpace(group.AssemblyName); name != "" {
			p.identifier = name
			break
		}
	}
	for _, group := range file.ItemGroups {
		for _, ref := range group.ProjectReferences {
			if ref.Include != "" {
				p.projectRefs = append(p.projectRefs, ref.Include)
			}
		}
		for _, ref := range group.PackageReferences {
			if ref.Include != "" {
				p.packageRefs = append(p.packageRefs, ref.Include)
			}
		}
	}
	return p, nil
}

// stem returns the file name without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// resolveRef turns a project reference as written in the file (typically a
// Windows-style relative path) into a cleaned path on the host, relative to
// the referencing project's directory.
func resolveRef(projectPath, include string) string {
	rel := filepath.FromSlash(strings.ReplaceAll(include, `\`, "/"))
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(projectPath), rel))
}
