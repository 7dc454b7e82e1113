package docgen

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/docmaker/internal/adapters/filesystem"
	"github.com/example/docmaker/internal/core/document"
	"github.com/example/docmaker/internal/models"
	"github.com/example/docmaker/internal/ports/secondary"
)

var update = flag.Bool("update", false, "update golden files")

// fakeWriter records writes and returns a canned result.
type fakeWriter struct {
	path    string
	content []byte
	abs     string
	err     error
}

func (w *fakeWriter) WriteClass(_ context.Context, path string, content []byte) (string, error) {
	w.path = path
	w.content = content
	if w.err != nil {
		return "", w.err
	}
	if w.abs != "" {
		return w.abs, nil
	}
	return path, nil
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	opts = append([]Option{WithBaseDir(t.TempDir()), WithWriter(&fakeWriter{})}, opts...)
	g, err := NewGenerator(opts...)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return g
}

func userFields() *models.FieldList {
	return models.NewFieldList(
		models.ScalarField{Name: "firstname", Type: "string"},
		models.ScalarField{Name: "age", Type: "int"},
		models.ScalarField{Name: "active", Type: "boolean"},
	)
}

func TestRenderGolden(t *testing.T) {
	tests := []struct {
		golden     string
		collection models.Collection
		fields     *models.FieldList
	}{
		{
			golden:     "user.golden",
			collection: models.Collection{Name: "user"},
			fields:     userFields(),
		},
		{
			golden:     "user_profile.golden",
			collection: models.Collection{Name: "user_profile", Embedded: true},
			fields: models.NewFieldList(
				models.EmbedOneField{Name: "address", Target: "address"},
				models.EmbedManyField{Name: "tags", Target: "tag"},
				models.ScalarField{Name: "verified", Type: "boolean"},
				models.EmbedManyField{Name: "photos", Target: "photo_item"},
			),
		},
	}

	g := newTestGenerator(t)
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			got, err := g.Render(tt.collection, tt.fields)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}

			path := filepath.Join("testdata", tt.golden)
			if *update {
				if err := os.WriteFile(path, got, 0o644); err != nil {
					t.Fatal(err)
				}
				return
			}

			want, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading golden file: %v\nRun with -update to create it.", err)
			}
			if diff := cmp.Diff(string(want), string(got)); diff != "" {
				t.Errorf("generated class differs from %s (-want +got):\n%s", tt.golden, diff)
			}
		})
	}
}

func TestRenderDeterministic(t *testing.T) {
	g := newTestGenerator(t)
	c := models.Collection{Name: "user"}

	first, err := g.Render(c, userFields())
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Render(c, userFields())
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("Render produced different output for identical input")
	}
}

var (
	propertyRe = regexp.MustCompile(`private \$(\w+);`)
	getterRe   = regexp.MustCompile(`public function ((?:get|is)\w+)\(\)`)
	setterRe   = regexp.MustCompile(`public function (set\w+)\(`)
)

func matches(re *regexp.Regexp, s string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestRenderUserScenario(t *testing.T) {
	g := newTestGenerator(t)
	out, err := g.Render(models.Collection{Name: "user"}, userFields())
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	if !strings.Contains(src, "class User {") {
		t.Error("missing class User declaration")
	}
	if strings.Contains(src, "__construct") {
		t.Error("constructor emitted without embed-many fields")
	}
	if strings.Contains(src, "ArrayCollection") {
		t.Error("ArrayCollection imported without embed-many fields")
	}

	checks := []struct {
		name string
		re   *regexp.Regexp
		want []string
	}{
		{"properties", propertyRe, []string{"id", "firstname", "age", "active"}},
		{"getters", getterRe, []string{"getId", "getFirstname", "getAge", "isActive"}},
		{"setters", setterRe, []string{"setId", "setFirstname", "setAge", "setActive"}},
	}
	for _, c := range checks {
		if diff := cmp.Diff(c.want, matches(c.re, src)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", c.name, diff)
		}
	}
}

func TestRenderEmbedOneScenario(t *testing.T) {
	g := newTestGenerator(t)
	fields := models.NewFieldList(models.EmbedOneField{Name: "address", Target: "address"})

	out, err := g.Render(models.Collection{Name: "user"}, fields)
	if err != nil {
		t.Fatal(err)
	}
	src := string(out)

	if !strings.Contains(src, "     * @MongoDB\\EmbedOne(targetDocument=Address::class)\n     */\n    private $address;") {
		t.Errorf("address not annotated as EmbedOne:\n%s", src)
	}
	if strings.Contains(src, "__construct") {
		t.Error("constructor emitted for embed-one only")
	}
	if diff := cmp.Diff([]string{"getId", "getAddress"}, matches(getterRe, src)); diff != "" {
		t.Errorf("getters mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"setId", "setAddress"}, matches(setterRe, src)); diff != "" {
		t.Errorf("setters mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderEmbedManyConstructor(t *testing.T) {
	g := newTestGenerator(t)
	fields := models.NewFieldList(
		models.ScalarField{Name: "title", Type: "string"},
		models.EmbedManyField{Name: "tags", Target: "tag"},
		models.EmbedOneField{Name: "author", Target: "author"},
	)

	out, err := g.Render(models.Collection{Name: "post"}, fields)
	if err != nil {
		t.Fatal(err)
	}

	wantCtor := "    public function __construct() {\n" +
		"        $this->tags = new ArrayCollection();\n" +
		"    }\n"
	if !strings.Contains(string(out), wantCtor) {
		t.Errorf("constructor does not initialise exactly tags:\n%s", out)
	}
	if got := strings.Count(string(out), "new ArrayCollection()"); got != 1 {
		t.Errorf("ArrayCollection instantiated %d times, want 1", got)
	}
	if !strings.Contains(string(out), "use Doctrine\\Common\\Collections\\ArrayCollection;\n") {
		t.Error("ArrayCollection not imported")
	}
}

func TestRenderDocumentAnnotation(t *testing.T) {
	tests := []struct {
		name     string
		embedded bool
		want     string
	}{
		{"document", false, ` * @MongoDB\Document(collection="user_profile")`},
		{"embedded document", true, ` * @MongoDB\EmbeddedDocument(collection="user_profile")`},
	}

	g := newTestGenerator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := g.Render(models.Collection{Name: "user_profile", Embedded: tt.embedded}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(out), tt.want+"\n */\nclass UserProfile {") {
				t.Errorf("annotation %q not found:\n%s", tt.want, out)
			}
		})
	}
}

func TestRenderSeparatedNames(t *testing.T) {
	g := newTestGenerator(t)
	fields := models.NewFieldList(
		models.EmbedOneField{Name: "address", Target: "postal-address"},
		models.EmbedManyField{Name: "posts", Target: "blog.posts"},
	)

	out, err := g.Render(models.Collection{Name: "user-profile"}, fields)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, want := range []string{
		` * @MongoDB\Document(collection="user-profile")` + "\n */\nclass UserProfile {",
		`@MongoDB\EmbedOne(targetDocument=PostalAddress::class)`,
		`@MongoDB\EmbedMany(targetDocument=BlogPosts::class)`,
	} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := g.OutputPath(models.Collection{Name: "user-profile"}); filepath.Base(got) != "UserProfile.php" {
		t.Errorf("OutputPath = %s, want UserProfile.php", got)
	}
}

func TestRenderRejectsUnusableCollectionName(t *testing.T) {
	g := newTestGenerator(t)
	for _, name := range []string{"", "1user", `us"er`} {
		_, err := g.Render(models.Collection{Name: name}, nil)
		var verr *document.ValidationError
		if !errors.As(err, &verr) || verr.Subject != document.SubjectCollection {
			t.Errorf("Render(%q) error = %v, want collection ValidationError", name, err)
		}
	}
}

func TestRenderNamespace(t *testing.T) {
	g := newTestGenerator(t, WithNamespace(`Acme\Odm`))
	out, err := g.Render(models.Collection{Name: "user"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "<?php\nnamespace Acme\\Odm;\n") {
		t.Errorf("namespace not applied:\n%s", out)
	}
}

func TestRenderStrictTypes(t *testing.T) {
	fields := models.NewFieldList(models.ScalarField{Name: "age", Type: "integer"})
	c := models.Collection{Name: "user"}

	strict := newTestGenerator(t)
	_, err := strict.Render(c, fields)
	var verr *document.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("strict Render error = %v, want *ValidationError", err)
	}
	if verr.Field != "age" {
		t.Errorf("ValidationError.Field = %q, want %q", verr.Field, "age")
	}

	tolerant := newTestGenerator(t, WithStrictTypes(false))
	out, err := tolerant.Render(c, fields)
	if err != nil {
		t.Fatalf("tolerant Render failed: %v", err)
	}
	if !strings.Contains(string(out), `@MongoDB\Field(type="integer")`) {
		t.Errorf("unknown type not passed through:\n%s", out)
	}
}

func TestGenerateStrictDoesNotWrite(t *testing.T) {
	w := &fakeWriter{}
	g, err := NewGenerator(WithBaseDir(t.TempDir()), WithWriter(w))
	if err != nil {
		t.Fatal(err)
	}

	fields := models.NewFieldList(models.ScalarField{Name: "age", Type: "integer"})
	if _, err := g.Generate(context.Background(), models.Collection{Name: "user"}, fields); err == nil {
		t.Fatal("expected validation error")
	}
	if w.path != "" {
		t.Errorf("writer called with %s despite validation error", w.path)
	}
}

func TestGenerateWritesToOutputPath(t *testing.T) {
	dir := t.TempDir()
	g, err := NewGenerator(WithBaseDir(dir), WithWriter(filesystem.NewClassWriter()))
	if err != nil {
		t.Fatal(err)
	}

	path, err := g.Generate(context.Background(), models.Collection{Name: "user_profile"}, userFields())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Generate returned relative path %s", path)
	}
	if filepath.Base(path) != "UserProfile.php" {
		t.Errorf("Generate wrote %s, want UserProfile.php", filepath.Base(path))
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	rendered, err := g.Render(models.Collection{Name: "user_profile"}, userFields())
	if err != nil {
		t.Fatal(err)
	}
	if string(written) != string(rendered) {
		t.Error("written file differs from rendered class")
	}

	// A second run overwrites the file in place.
	if _, err := g.Generate(context.Background(), models.Collection{Name: "user_profile"}, nil); err != nil {
		t.Fatalf("second Generate failed: %v", err)
	}
	written, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(written), "firstname") {
		t.Error("existing file was not overwritten")
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name     string
		writeErr error
		want     error
	}{
		{"write failure", errors.New("disk full"), ErrWriteFailed},
		{"path resolution failure", &filesystem.PathError{Path: "x", Err: os.ErrNotExist}, ErrPathResolutionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			g, err := NewGenerator(WithBaseDir(dir), WithWriter(&fakeWriter{err: tt.writeErr}))
			if err != nil {
				t.Fatal(err)
			}

			_, err = g.Generate(context.Background(), models.Collection{Name: "user"}, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Generate error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, tt.writeErr) {
				t.Errorf("Generate error does not wrap %v", tt.writeErr)
			}

			var gerr *GenerationError
			if !errors.As(err, &gerr) {
				t.Fatalf("Generate error = %T, want *GenerationError", err)
			}
			if want := filepath.Join(dir, "User.php"); gerr.Path != want {
				t.Errorf("GenerationError.Path = %s, want %s", gerr.Path, want)
			}
		})
	}
}

func TestNewGeneratorOptions(t *testing.T) {
	if _, err := NewGenerator(WithBaseDir(t.TempDir())); err == nil {
		t.Error("expected error without writer")
	}
	if _, err := NewGenerator(WithWriter(&fakeWriter{}), WithBaseDir("")); err == nil {
		t.Error("expected error for empty base dir")
	}
	if _, err := NewGenerator(WithWriter(&fakeWriter{}), WithNamespace("")); err == nil {
		t.Error("expected error for empty namespace")
	}
	if _, err := NewGenerator(WithWriter(&fakeWriter{}), WithNamespace("App\\Document;")); err == nil {
		t.Error("expected error for namespace with a statement terminator")
	}
	if _, err := NewGenerator(WithWriter(nil)); err == nil {
		t.Error("expected error for nil writer")
	}

	g, err := NewGenerator(WithWriter(&fakeWriter{}))
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	want, err := DefaultBaseDir()
	if err != nil {
		t.Fatal(err)
	}
	if g.BaseDir() != want {
		t.Errorf("BaseDir() = %s, want %s", g.BaseDir(), want)
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		collection string
		want       string
	}{
		{"user", "User"},
		{"user_profile", "UserProfile"},
		{"UserProfile", "UserProfile"},
	}
	for _, tt := range tests {
		if got := ClassName(models.Collection{Name: tt.collection}); got != tt.want {
			t.Errorf("ClassName(%q) = %q, want %q", tt.collection, got, tt.want)
		}
	}
}

var _ secondary.ClassWriter = (*fakeWriter)(nil)
