package resolver

import (
	"bytes"
	"errors"
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/happy-server/internal/config"
	"github.com/trsv-dev/happy-server/internal/errs"
	"github.com/trsv-dev/happy-server/internal/features"
	"github.com/trsv-dev/happy-server/internal/locale"
	"github.com/trsv-dev/happy-server/internal/models"
	"github.com/trsv-dev/happy-server/internal/viewer"
	"github.com/trsv-dev/happy-server/internal/viewer/mocks"
)

var errNoCwd = errors.New("getwd: no such file or directory")

func fixedEnv(dir string) Env {
	return Env{Getwd: func() (string, error) { return dir, nil }}
}

func brokenEnv() Env {
	return Env{Getwd: func() (string, error) { return "", errNoCwd }}
}

func str(s string) *string {
	return &s
}

// englishViewer Реальный CLIViewer без цвета для проверки отчётов.
func englishViewer(out *bytes.Buffer) *viewer.CLIViewer {
	return viewer.NewCLIViewer(out, locale.English, locale.Plain(), models.ClipboardUnavailable, nil)
}

// TestResolveDefaults Проверяет план без флагов: порт 80, пустой префикс, текущий каталог.
func TestResolveDefaults(t *testing.T) {
	res := Resolve(config.RawOptions{}, features.Set{English: true}, fixedEnv("/tmp/demo"))

	assert.Equal(t, locale.English, res.Language)
	assert.True(t, res.Style.IsStyled())
	assert.Equal(t, models.ClipboardCopy, res.Clipboard)

	pre := res.PreModel
	assert.True(t, pre.OK())
	assert.True(t, pre.Port.IsDefault())
	assert.True(t, pre.DistDir.IsDefault())
	assert.True(t, pre.URIPrefix.IsDefault())

	out := &bytes.Buffer{}
	plan, report, err := res.Build(englishViewer(out))
	require.NoError(t, err)
	require.Nil(t, report)

	assert.Equal(t, netip.MustParseAddrPort("0.0.0.0:80"), plan.BindAddress)
	assert.Equal(t, "/tmp/demo", plan.DistDir)
	assert.Equal(t, "", plan.URIPrefix)
	assert.Nil(t, plan.TLS)
	assert.Empty(t, out.String())
}

// TestResolvePort Проверяет разбор порта.
func TestResolvePort(t *testing.T) {
	tests := []struct {
		in     string
		want   uint16
		wantOK bool
	}{
		{"0", 0, true},
		{"80", 80, true},
		{"8080", 8080, true},
		{"65535", 65535, true},
		{"65536", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{" 80", 0, false},
		{"80.0", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := resolvePort(str(tt.in))

			assert.Equal(t, models.SourceCliArg, got.Source)
			require.Equal(t, tt.wantOK, got.Value.OK())
			if tt.wantOK {
				assert.Equal(t, tt.want, got.Value.Value)
				return
			}

			var portErr *errs.ErrPortParse
			require.ErrorAs(t, got.Value.Err, &portErr)
			assert.Equal(t, tt.in, portErr.Input)
		})
	}
}

// TestResolveDistDir Проверяет каталог раздачи и его происхождение.
func TestResolveDistDir(t *testing.T) {
	env := fixedEnv("/home/user")

	got := resolveDistDir(nil, env)
	assert.True(t, got.IsDefault())
	assert.Equal(t, "/home/user", got.Value.Value)

	got = resolveDistDir(nil, brokenEnv())
	assert.True(t, got.IsDefault())
	assert.ErrorIs(t, got.Value.Err, errNoCwd)

	got = resolveDistDir(str("/srv/www/../files"), env)
	assert.False(t, got.IsDefault())
	assert.Equal(t, filepath.Clean("/srv/files"), got.Value.Value)

	got = resolveDistDir(str("public"), env)
	assert.Equal(t, filepath.Join("/home/user", "public"), got.Value.Value)

	// несуществующий путь допустим: ошибку покажет старт сервера
	got = resolveDistDir(str("/definitely/not/here"), env)
	assert.True(t, got.Value.OK())

	got = resolveDistDir(str(""), env)
	assert.False(t, got.IsDefault())
	assert.ErrorIs(t, got.Value.Err, errs.ErrEmptyPath)

	got = resolveDistDir(str("bad\x00dir"), env)
	assert.ErrorIs(t, got.Value.Err, errs.ErrNulInPath)

	got = resolveDistDir(str("relative"), brokenEnv())
	assert.False(t, got.IsDefault())
	assert.ErrorIs(t, got.Value.Err, errNoCwd)
}

// TestResolveURIPrefix Проверяет правила префикса URI.
func TestResolveURIPrefix(t *testing.T) {
	got := resolveURIPrefix(nil)
	assert.True(t, got.IsDefault())
	assert.Equal(t, "", got.Value.Value)

	tests := []struct {
		in      string
		wantErr error
	}{
		{"docs", nil},
		{"docs/v1", nil},
		{"docs/", nil},
		{"", nil},
		{"/bad", errs.ErrPrefixLeadingSlash},
		{"/", errs.ErrPrefixLeadingSlash},
		{"a//b", errs.ErrPrefixDoubleSlash},
		{"a//", errs.ErrPrefixDoubleSlash},
		{"//docs", errs.ErrPrefixLeadingSlash},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := resolveURIPrefix(str(tt.in))

			assert.Equal(t, models.SourceCliArg, got.Source)
			if tt.wantErr == nil {
				require.True(t, got.Value.OK())
				assert.Equal(t, tt.in, got.Value.Value)
				assert.True(t, models.ValidURIPrefix(got.Value.Value))
				return
			}

			assert.ErrorIs(t, got.Value.Err, tt.wantErr)
		})
	}
}

// TestResolveLanguageFlip Проверяет переключение языка относительно сборки.
func TestResolveLanguageFlip(t *testing.T) {
	tests := []struct {
		name  string
		feats features.Set
		count int
		want  locale.Language
	}{
		{"ja по умолчанию", features.Set{}, 0, locale.Japanese},
		{"ja + -e", features.Set{}, 1, locale.English},
		{"ja + -e -e", features.Set{}, 2, locale.Japanese},
		{"en по умолчанию", features.Set{English: true}, 0, locale.English},
		{"en + -j", features.Set{English: true}, 1, locale.Japanese},
		{"en + -j -j", features.Set{English: true}, 2, locale.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(config.RawOptions{FlipLanguage: tt.count}, tt.feats, fixedEnv("/"))
			assert.Equal(t, tt.want, res.Language)
		})
	}
}

// TestResolveStyleAndClipboard Проверяет намерения цвета и буфера обмена.
func TestResolveStyleAndClipboard(t *testing.T) {
	env := fixedEnv("/")

	res := Resolve(config.RawOptions{ColorOverride: true, ClipboardOverride: true}, features.Set{}, env)
	assert.False(t, res.Style.IsStyled())
	assert.Equal(t, models.ClipboardSkip, res.Clipboard)

	res = Resolve(config.RawOptions{ColorOverride: true}, features.Set{NoColor: true, NoClipboard: true}, env)
	assert.True(t, res.Style.IsStyled())
	assert.Equal(t, models.ClipboardUnavailable, res.Clipboard)

	res = Resolve(config.RawOptions{}, features.Set{NoColor: true}, env)
	assert.False(t, res.Style.IsStyled())
}

// TestBuildCustomPortAndPrefix Проверяет план с -p 8080 -u docs.
func TestBuildCustomPortAndPrefix(t *testing.T) {
	raw := config.RawOptions{Port: str("8080"), URIPrefix: str("docs")}

	plan, report, err := Resolve(raw, features.Set{}, fixedEnv("/srv")).Build(englishViewer(&bytes.Buffer{}))

	require.NoError(t, err)
	require.Nil(t, report)
	assert.Equal(t, uint16(8080), plan.Port())
	assert.Equal(t, "docs", plan.URIPrefix)
	assert.Equal(t, "http://localhost:8080/docs", viewer.BrowseURL(plan))
}

// TestBuildInvalidPort Проверяет отчёт при -p abc.
func TestBuildInvalidPort(t *testing.T) {
	out := &bytes.Buffer{}
	plan, report, err := Resolve(config.RawOptions{Port: str("abc")}, features.Set{}, fixedEnv("/srv")).Build(englishViewer(out))

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, models.BuildPlan{}, plan)
	require.Len(t, report.Paragraphs, 1)
	assert.Contains(t, report.Paragraphs[0], "port")
	assert.Contains(t, report.Paragraphs[0], "0 and 65535")
	assert.Contains(t, out.String(), report.Paragraphs[0])
}

// TestBuildInvalidPrefix Проверяет отчёт при -u /bad.
func TestBuildInvalidPrefix(t *testing.T) {
	_, report, err := Resolve(config.RawOptions{URIPrefix: str("/bad")}, features.Set{}, fixedEnv("/srv")).Build(englishViewer(&bytes.Buffer{}))

	require.NoError(t, err)
	require.NotNil(t, report)
	require.Len(t, report.Paragraphs, 1)
	assert.Contains(t, report.Paragraphs[0], `must not start with "/"`)
}

// TestBuildTwoFailures Проверяет, что обе ошибки выводятся в порядке port, prefix.
func TestBuildTwoFailures(t *testing.T) {
	raw := config.RawOptions{URIPrefix: str("a//b"), Port: str("foo")}

	_, report, err := Resolve(raw, features.Set{}, fixedEnv("/srv")).Build(englishViewer(&bytes.Buffer{}))

	require.NoError(t, err)
	require.NotNil(t, report)
	require.Len(t, report.Paragraphs, 2)
	assert.Contains(t, report.Paragraphs[0], "port number")
	assert.Contains(t, report.Paragraphs[1], "URI prefix")
}

// TestBuildAllFailures Проверяет накопление всех трёх ошибок, включая текущий каталог.
func TestBuildAllFailures(t *testing.T) {
	raw := config.RawOptions{Port: str("99999"), URIPrefix: str("/x")}

	_, report, err := Resolve(raw, features.Set{}, brokenEnv()).Build(englishViewer(&bytes.Buffer{}))

	require.NoError(t, err)
	require.NotNil(t, report)
	require.Len(t, report.Paragraphs, 3)
	assert.Contains(t, report.Paragraphs[1], "current directory")
}

// TestBuildRendersBeforeDeciding Проверяет, что PreModel отдаётся на отрисовку целиком.
func TestBuildRendersBeforeDeciding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	res := Resolve(config.RawOptions{Port: str("x")}, features.Set{}, fixedEnv("/srv"))

	v := mocks.NewMockViewer(ctrl)
	v.EXPECT().RenderResolution(res.PreModel).Return([]string{"port paragraph"}, nil).Times(1)

	_, report, err := res.Build(v)

	require.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, []string{"port paragraph"}, report.Paragraphs)
}

// TestBuildRenderError Проверяет, что сбой записи становится ErrRender.
func TestBuildRenderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	v := mocks.NewMockViewer(ctrl)
	v.EXPECT().RenderResolution(gomock.Any()).Return(nil, errors.New("broken pipe"))

	_, report, err := Resolve(config.RawOptions{}, features.Set{}, fixedEnv("/srv")).Build(v)

	assert.Nil(t, report)
	var renderErr *errs.ErrRender
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, errs.ExitRender, errs.ExitCode(err))
}

// TestBuildTLSGate Проверяет, что TLS попадает в план только при собранной поддержке SSL.
func TestBuildTLSGate(t *testing.T) {
	material := &models.TLSMaterial{CertChainPEM: []byte("cert"), PrivateKeyPEM: []byte("key")}

	tests := []struct {
		name   string
		feats  features.Set
		scheme string
		url    string
	}{
		{"ssl собран", features.Set{}, "https", "https://localhost:80"},
		{"no_ssl", features.Set{NoSSL: true}, "http", "http://localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Resolve(config.RawOptions{}, tt.feats, fixedEnv("/srv"))
			res.TLS = material

			plan, report, err := res.Build(englishViewer(&bytes.Buffer{}))

			require.NoError(t, err)
			require.Nil(t, report)
			assert.Equal(t, tt.scheme, plan.Scheme())
			assert.Equal(t, tt.url, viewer.BrowseURL(plan))
		})
	}
}
