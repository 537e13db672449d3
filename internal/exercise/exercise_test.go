package exercise

import (
	"bytes"
	"context"
	"reflect"
	"testing"
)

// recordRunner records the command it was asked to run.
type recordRunner struct {
	name    string
	args    []string
	success bool
	output  string
}

func (r *recordRunner) Run(ctx context.Context, out *bytes.Buffer, name string, args ...string) (bool, error) {
	r.name = name
	r.args = args
	out.Reset()
	out.WriteString(r.output)
	return r.success, nil
}

func TestRunCommandSelection(t *testing.T) {
	tests := []struct {
		name     string
		ex       Exercise
		wantArgs []string
	}{
		{
			name:     "run exercise",
			ex:       Exercise{Name: "intro1", Dir: "00_intro"},
			wantArgs: []string{"run", "./exercises/00_intro/intro1.go"},
		},
		{
			name:     "test exercise",
			ex:       Exercise{Name: "if1", Dir: "03_if", Test: true},
			wantArgs: []string{"test", "./exercises/03_if"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &recordRunner{success: true}
			var out bytes.Buffer

			success, err := tt.ex.Run(context.Background(), &out, runner)
			if err != nil {
				t.Fatal(err)
			}
			if !success {
				t.Error("success = false")
			}
			if runner.name != "go" {
				t.Errorf("command = %q, want go", runner.name)
			}
			if !reflect.DeepEqual(runner.args, tt.wantArgs) {
				t.Errorf("args = %v, want %v", runner.args, tt.wantArgs)
			}
		})
	}
}

func TestRunOverwritesCapture(t *testing.T) {
	ex := Exercise{Name: "intro1", Dir: "00_intro"}
	runner := &recordRunner{success: true, output: "fresh"}

	var out bytes.Buffer
	out.WriteString("stale output from the previous run")

	if _, err := ex.Run(context.Background(), &out, runner); err != nil {
		t.Fatal(err)
	}
	if out.String() != "fresh" {
		t.Errorf("capture = %q, want %q", out.String(), "fresh")
	}
}
