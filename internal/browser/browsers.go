// Package browser answers whether an application package identifier is a
// known web browser. Browsers get different save-prompt treatment: they run
// their own native credential-save UI for single-field forms.
package browser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// knownBrowsers is the default allow-list of browser package identifiers.
var knownBrowsers = map[string]struct{}{
	"alook.browser":                            {},
	"alook.browser.google":                     {},
	"com.amazon.cloud9":                        {},
	"com.android.browser":                      {},
	"com.android.chrome":                       {},
	"com.android.htmlviewer":                   {},
	"com.avast.android.secure.browser":         {},
	"com.avg.android.secure.browser":           {},
	"com.brave.browser":                        {},
	"com.brave.browser_beta":                   {},
	"com.brave.browser_default":                {},
	"com.brave.browser_dev":                    {},
	"com.brave.browser_nightly":                {},
	"com.chrome.beta":                          {},
	"com.chrome.canary":                        {},
	"com.chrome.dev":                           {},
	"com.cookiegames.smartcookie":              {},
	"com.cookiejarapps.android.smartcookieweb": {},
	"com.ecosia.android":                       {},
	"com.google.android.apps.chrome":           {},
	"com.google.android.apps.chrome_dev":       {},
	"com.google.android.captiveportallogin":    {},
	"com.iode.firefox":                         {},
	"com.jamal2367.styx":                       {},
	"com.kiwibrowser.browser":                  {},
	"com.kiwibrowser.browser.dev":              {},
	"com.microsoft.emmx":                       {},
	"com.microsoft.emmx.beta":                  {},
	"com.microsoft.emmx.canary":                {},
	"com.microsoft.emmx.dev":                   {},
	"com.mmbox.browser":                        {},
	"com.mmbox.xbrowser":                       {},
	"com.mycompany.app.soulbrowser":            {},
	"com.naver.whale":                          {},
	"com.opera.browser":                        {},
	"com.opera.browser.beta":                   {},
	"com.opera.gx":                             {},
	"com.opera.mini.native":                    {},
	"com.opera.mini.native.beta":               {},
	"com.opera.touch":                          {},
	"com.qflair.browserq":                      {},
	"com.qwant.liberty":                        {},
	"com.sec.android.app.sbrowser":             {},
	"com.sec.android.app.sbrowser.beta":        {},
	"com.stoutner.privacybrowser.free":         {},
	"com.stoutner.privacybrowser.standard":     {},
	"com.vivaldi.browser":                      {},
	"com.vivaldi.browser.snapshot":             {},
	"com.vivaldi.browser.sopranos":             {},
	"com.yandex.browser":                       {},
	"com.z28j.feel":                            {},
	"idm.internet.download.manager":            {},
	"idm.internet.download.manager.adm.lite":   {},
	"idm.internet.download.manager.plus":       {},
	"io.github.forkmaintainers.iceraven":       {},
	"mark.via":                                 {},
	"mark.via.gp":                              {},
	"net.slions.fulguris.full.download":        {},
	"net.slions.fulguris.full.download.debug":  {},
	"net.slions.fulguris.full.playstore":       {},
	"net.slions.fulguris.full.playstore.debug": {},
	"org.adblockplus.browser":                  {},
	"org.adblockplus.browser.beta":             {},
	"org.bromite.bromite":                      {},
	"org.bromite.chromium":                     {},
	"org.chromium.chrome":                      {},
	"org.codeaurora.swe.browser":               {},
	"org.gnu.icecat":                           {},
	"org.mozilla.fenix":                        {},
	"org.mozilla.fenix.nightly":                {},
	"org.mozilla.fennec_aurora":                {},
	"org.mozilla.fennec_fdroid":                {},
	"org.mozilla.firefox":                      {},
	"org.mozilla.firefox_beta":                 {},
	"org.mozilla.reference.browser":            {},
	"org.mozilla.rocket":                       {},
	"org.torproject.torbrowser":                {},
	"org.torproject.torbrowser_alpha":          {},
	"org.ungoogled.chromium.extensions.stable": {},
	"org.ungoogled.chromium.stable":            {},
	"us.spotco.fennec_dos":                     {},
}

// List is a membership test over browser package identifiers.
type List struct {
	packages map[string]struct{}
}

// Default returns a List holding the built-in browser set.
func Default() *List {
	packages := make(map[string]struct{}, len(knownBrowsers))
	for pkg := range knownBrowsers {
		packages[pkg] = struct{}{}
	}
	return &List{packages: packages}
}

// IsBrowser reports whether pkg names a known browser application.
func (l *List) IsBrowser(pkg string) bool {
	_, ok := l.packages[pkg]
	return ok
}

type listFile struct {
	Browsers []string `yaml:"browsers"`
}

// Load merges additional browser package names from a YAML file of the form:
//
//	browsers:
//	  - com.example.browser
func (l *List) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read browser list: %w", err)
	}
	var file listFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse browser list: %w", err)
	}
	for _, pkg := range file.Browsers {
		if pkg != "" {
			l.packages[pkg] = struct{}{}
		}
	}
	return nil
}
