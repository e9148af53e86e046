// Package i18n loads per-locale dictionaries and exposes them through a
// Translator bound to one locale.
//
// A dictionary is a YAML document named after its locale ("en.yaml",
// "es.yaml"). Nested maps are flattened into dotted keys:
//
//	navigation:
//	  home: Home
//	footer:
//	  copyright: "© {{year}} TurboHomes. All rights reserved."
//
//	loader, err := i18n.NewLoader(dictionaries.FS)
//	tr := loader.Translator(ctx, locale.ES)
//	tr.T("navigation.home")                     // "Inicio"
//	tr.T("footer.copyright", i18n.M{"year": 2025})
//
// # Fallback
//
// NewLoader fails if the default locale cannot be loaded. Any other locale
// whose file is missing or malformed is logged and served with the default
// dictionary instead, so a request never fails because of a dictionary.
// Keys missing from a non-default dictionary resolve through the default one,
// then to the key itself.
//
// # Pluralization
//
// Tn picks a form with the locale's plural rule and looks up "<key>.<form>",
// falling back to "<key>.other":
//
//	blog:
//	  count:
//	    zero: No articles yet
//	    one: One article
//	    other: "{{count}} articles"
//
// Dictionaries are immutable once loaded and safe for concurrent use.
package i18n
