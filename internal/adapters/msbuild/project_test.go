package msbuild

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestParseProject_DeclaredAssemblyName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Lib.csproj")
	writeFile(t, path, `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <AssemblyName>Contoso.Lib</AssemblyName>
  </PropertyGroup>
  <ItemGroup>
    <ProjectReference Include="..\Core\Core.csproj" />
    <PackageReference Include="Newtonsoft.Json" Version="13.0.3" />
  </ItemGroup>
</Project>`)

	p, err := parseProject(path)
	require.NoError(t, err)
	assert.Equal(t, "Contoso.Lib", p.identifier)
	assert.Equal(t, []string{`..\Core\Core.csproj`}, p.projectRefs)
	assert.Equal(t, []string{"Newtonsoft.Json"}, p.packageRefs)
}

func TestParseProject_FallsBackToFileStem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Tools.csproj")
	writeFile(t, path, `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
</Project>`)

	p, err := parseProject(path)
	require.NoError(t, err)
	assert.Equal(t, "Tools", p.identifier)
	assert.Empty(t, p.projectRefs)
	assert.Empty(t, p.packageRefs)
}

func TestParseProject_MultipleItemGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	writeFile(t, path, `<Project Sdk="Microsoft.NET.Sdk">
  <ItemGroup>
    <ProjectReference Include="..\One\One.csproj" />
  </ItemGroup>
  <ItemGroup>
    <ProjectReference Include="..\Two\Two.csproj" />
    <PackageReference Include="Serilog" Version="3.1.1" />
  </ItemGroup>
</Project>`)

	p, err := parseProject(path)
	require.NoError(t, err)
	assert.Equal(t, []string{`..\One\One.csproj`, `..\Two\Two.csproj`}, p.projectRefs)
	assert.Equal(t, []string{"Serilog"}, p.packageRefs)
}

func TestParseProject_MalformedXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Broken.csproj")
	writeFile(t, path, `<Project><ItemGroup>`)

	_, err := parseProject(path)
	require.Error(t, err)
}

func TestResolveRef_WindowsSeparators(t *testing.T) {
	got := resolveRef(filepath.Join("src", "App", "App.csproj"), `..\Lib\Lib.csproj`)
	assert.Equal(t, filepath.Join("src", "Lib", "Lib.csproj"), got)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "App", stem(filepath.Join("src", "App", "App.csproj")))
	assert.Equal(t, "Lib", stem("Lib.fsproj"))
}
