package figure

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// message keys; the English catalog maps each key to itself
const (
	keyTransistorCount = "Transistor count"
	keyStorageCapacity = "Storage capacity"
	keyYear            = "Year"
)

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		keyTransistorCount: "Transistor count",
		keyStorageCapacity: "Storage capacity",
		keyYear:            "Year",
	},
	language.German: {
		keyTransistorCount: "Transistorenzahl",
		keyStorageCapacity: "Speicherkapazität",
		keyYear:            "Jahr",
	},
}

// supported lists the catalog locales; the first entry is the matcher fallback.
var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

func init() {
	for tag, msgs := range catalogs {
		for key, val := range msgs {
			message.SetString(tag, key, val)
		}
	}
}

// Labels holds the axis label text for one locale.
type Labels struct {
	Locale          language.Tag
	TransistorCount string
	StorageCapacity string
	Year            string
}

// LabelsFor resolves axis labels for a BCP 47 locale such as "en" or "de-DE".
// Unknown or malformed locales fall back to English.
func LabelsFor(locale string) Labels {
	tag := language.English
	if t, err := language.Parse(locale); err == nil {
		if _, idx, conf := matcher.Match(t); conf != language.No {
			tag = supported[idx]
		}
	}
	p := message.NewPrinter(tag)
	return Labels{
		Locale:          tag,
		TransistorCount: p.Sprintf(keyTransistorCount),
		StorageCapacity: p.Sprintf(keyStorageCapacity),
		Year:            p.Sprintf(keyYear),
	}
}
