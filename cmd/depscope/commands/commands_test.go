package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/depscope/cmd/depscope/commands"
	"go.trai.ch/depscope/internal/app"
	"go.trai.ch/depscope/internal/core/domain"
	"go.trai.ch/depscope/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func exampleRecords() []domain.UnitRecord {
	return []domain.UnitRecord{
		{Identifier: "A", ProjectRefs: []string{"B"}, PackageRefs: []string{"P1"}},
		{Identifier: "B", ProjectRefs: []string{"C"}},
		{Identifier: "C", PackageRefs: []string{"P2"}},
	}
}

func newCLI(t *testing.T, scanner *mocks.MockScanner) (*commands.CLI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cli := commands.New(app.New(scanner))
	var out, errOut bytes.Buffer
	cli.SetOutput(&out, &errOut)
	return cli, &out, &errOut
}

func TestTree_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	root := t.TempDir()
	scanner.EXPECT().Scan(gomock.Any(), root).Return(exampleRecords(), nil).Times(1)

	cli, out, errOut := newCLI(t, scanner)
	cli.SetArgs([]string{"tree", "--path", root})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "A\n  B\n    C\n      P2\n  P1\n")
	assert.Empty(t, errOut.String())
}

func TestCommandName_CaseInsensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	root := t.TempDir()
	scanner.EXPECT().Scan(gomock.Any(), root).Return(exampleRecords(), nil).Times(1)

	cli, out, _ := newCLI(t, scanner)
	cli.SetArgs([]string{"TREE", "--path", root})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "A\n")
}

func TestEntry_MissingSourceSkipsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The scanner must not run; the command is skipped before any graph work.
	scanner := mocks.NewMockScanner(ctrl)
	cli, out, errOut := newCLI(t, scanner)
	cli.SetArgs([]string{"entry", "--path", t.TempDir()})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "--source is required for 'entry'")
}

func TestPath_MissingTargetSkipsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	cli, out, errOut := newCLI(t, scanner)
	cli.SetArgs([]string{"path", "--path", t.TempDir(), "--source", "A"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "--target is required for 'path'")
}

func TestTree_MissingPathIsConfigurationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	cli, out, errOut := newCLI(t, scanner)
	cli.SetArgs([]string{"tree"})

	// Reported, not propagated: the invocation is not a process failure.
	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
}

func TestEntry_UnknownSourceReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	root := t.TempDir()
	scanner.EXPECT().Scan(gomock.Any(), root).Return(exampleRecords(), nil).Times(1)

	cli, out, errOut := newCLI(t, scanner)
	cli.SetArgs([]string{"entry", "--path", root, "--source", "Ghost"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error:")
}

func TestDependsOn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	root := t.TempDir()
	scanner.EXPECT().Scan(gomock.Any(), root).Return(exampleRecords(), nil).Times(1)

	cli, out, _ := newCLI(t, scanner)
	cli.SetArgs([]string{"depends-on", "--path", root, "--target", "P2"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "A\n  B\n    C\n      P2\nB\n  C\n    P2\nC\n  P2\n", out.String())
}

func TestEntrySimple_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scanner := mocks.NewMockScanner(ctrl)
	root := t.TempDir()
	scanner.EXPECT().Scan(gomock.Any(), root).Return(exampleRecords(), nil).Times(1)

	cli, out, _ := newCLI(t, scanner)
	cli.SetArgs([]string{"entry-simple", "--path", root, "--source", "A"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "Projects:\n  B\n  C\nNuGet Packages:\n  P1\n  P2\n", out.String())
}

func TestUnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _ := newCLI(t, mocks.NewMockScanner(ctrl))
	cli.SetArgs([]string{"bogus"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestHelp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, out, _ := newCLI(t, mocks.NewMockScanner(ctrl))
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "depscope")
}
