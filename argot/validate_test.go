//nolint:testpackage // using package name 'argot' to access unexported fields for testing
package argot

import "testing"

// archiveSpec mirrors a compressing tool with the three group kinds.
func archiveSpec(t *testing.T) *Spec {
	t.Helper()
	b := New("arc", "Archives files")
	b.Flag("gzip", "Use gzip").Short('z')
	b.Flag("bzip2", "Use bzip2").Short('j')
	b.Flag("sign", "Sign the archive")
	b.Option("key", "Signing key")
	b.Flag("create", "Create an archive").Short('c')
	b.Flag("extract", "Extract an archive").Short('x')
	b.Group("compression", GroupConflict, "gzip", "bzip2")
	b.Group("signing", GroupRequires, "sign", "key")
	b.Group("mode", GroupOneRequired, "create", "extract")
	return buildSpec(t, b)
}

func TestConflictGroup(t *testing.T) {
	s := archiveSpec(t)

	_, err := s.Parse([]string{"-c", "-z", "-j"})
	perr := assertParseError(t, err, ErrConflictingArguments)
	if perr.Group != "compression" {
		t.Errorf("Expected group 'compression', got %q", perr.Group)
	}

	if _, err := s.Parse([]string{"-c", "-z"}); err != nil {
		t.Errorf("Single member should not conflict: %v", err)
	}
}

func TestConflictIsSymmetric(t *testing.T) {
	s := archiveSpec(t)

	_, err := s.Parse([]string{"-c", "-z", "-j"})
	perrA := assertParseError(t, err, ErrConflictingArguments)

	_, err = s.Parse([]string{"-c", "-j", "-z"})
	perrB := assertParseError(t, err, ErrConflictingArguments)

	if perrA.Message != perrB.Message {
		t.Errorf("Expected the same error regardless of order:\n%q\n%q",
			perrA.Message, perrB.Message)
	}
}

func TestRequiresGroup(t *testing.T) {
	s := archiveSpec(t)

	_, err := s.Parse([]string{"-c", "--sign"})
	perr := assertParseError(t, err, ErrGroupRequirementUnmet)
	if perr.Group != "signing" {
		t.Errorf("Expected group 'signing', got %q", perr.Group)
	}
	if perr.Arg != "sign" {
		t.Errorf("Expected Arg='sign', got %q", perr.Arg)
	}

	if _, err := s.Parse([]string{"-c", "--sign", "--key", "id_ed25519"}); err != nil {
		t.Errorf("Both members present should satisfy the group: %v", err)
	}
	if _, err := s.Parse([]string{"-c"}); err != nil {
		t.Errorf("No members present should satisfy the group: %v", err)
	}

	// The relation is directional: the key alone does not demand signing.
	if _, err := s.Parse([]string{"-c", "--key", "id_ed25519"}); err != nil {
		t.Errorf("A non-triggering member alone should be fine: %v", err)
	}
}

func TestOneRequiredGroup(t *testing.T) {
	s := archiveSpec(t)

	_, err := s.Parse(nil)
	perr := assertParseError(t, err, ErrGroupRequirementUnmet)
	if perr.Group != "mode" {
		t.Errorf("Expected group 'mode', got %q", perr.Group)
	}

	if _, err := s.Parse([]string{"-x"}); err != nil {
		t.Errorf("One member present should satisfy the group: %v", err)
	}
}

func TestMissingRequiredCheckedFirst(t *testing.T) {
	b := New("arc", "Archives files")
	b.Option("output", "Output path").Required()
	b.Flag("gzip", "Use gzip")
	b.Flag("bzip2", "Use bzip2")
	b.Group("compression", GroupConflict, "gzip", "bzip2")
	s := buildSpec(t, b)

	// Both violations exist; the missing required argument is reported.
	_, err := s.Parse([]string{"--gzip", "--bzip2"})
	perr := assertParseError(t, err, ErrMissingRequired)
	if perr.Arg != "output" {
		t.Errorf("Expected Arg='output', got %q", perr.Arg)
	}
}

func TestDefaultDoesNotTriggerGroups(t *testing.T) {
	b := New("arc", "Archives files")
	b.Option("gzip-level", "Gzip level").Default("6")
	b.Flag("store", "No compression")
	b.Group("compression", GroupConflict, "gzip-level", "store")
	s := buildSpec(t, b)

	// gzip-level is filled from its default, which is not an occurrence,
	// so using --store alongside it is not a conflict.
	res, err := s.Parse([]string{"--store"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if level := res.String("gzip-level"); level != "6" {
		t.Errorf("Expected default gzip-level='6', got %q", level)
	}
}

func TestDefaultDoesNotSatisfyOneRequired(t *testing.T) {
	b := New("arc", "Archives files")
	b.Option("input", "Input path").Default("-")
	b.Option("url", "Fetch from URL")
	b.Group("source", GroupOneRequired, "input", "url")
	s := buildSpec(t, b)

	_, err := s.Parse(nil)
	assertParseError(t, err, ErrGroupRequirementUnmet)
}

func TestRequiredSatisfiedByDefault(t *testing.T) {
	b := New("arc", "Archives files")
	b.Option("output", "Output path").Required().Default("-")
	s := buildSpec(t, b)

	res, err := s.Parse(nil)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if out := res.String("output"); out != "-" {
		t.Errorf("Expected default output '-', got %q", out)
	}
}

func TestRequiredPositionalMissing(t *testing.T) {
	s := copySpec(t)

	_, err := s.Parse(nil)
	perr := assertParseError(t, err, ErrMissingRequired)
	if perr.Arg != "src" {
		t.Errorf("Expected first declared missing argument 'src', got %q", perr.Arg)
	}

	_, err = s.Parse([]string{"f1"})
	perr = assertParseError(t, err, ErrMissingRequired)
	if perr.Arg != "dest" {
		t.Errorf("Expected Arg='dest', got %q", perr.Arg)
	}
}
