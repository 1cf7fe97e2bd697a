// internal/engine/dispatch/templates.go
package dispatch

import (
	"fmt"
	"strings"

	"internmatch/internal/engine/dictionary"
)

type messageTemplate struct {
	subject string
	text    string
	html    string
}

// One template per locale. Posting fields are substituted after being
// translated back into the candidate's locale for display.
var templates = map[dictionary.Locale]messageTemplate{
	dictionary.LocaleEnglish: {
		subject: "New internship match: {{title}} at {{company}}",
		text:    "Hi {{name}},\n\nWe found an internship that matches your profile ({{score}}% match).\n\nRole: {{title}}\nCompany: {{company}}\nLocation: {{location}}\nDuration: {{duration}}\nSkills: {{skills}}\nApply by: {{deadline}}\n",
		html:    "<p>Hi {{name}},</p><p>We found an internship that matches your profile (<b>{{score}}%</b> match).</p><p>Role: {{title}}<br>Company: {{company}}<br>Location: {{location}}<br>Duration: {{duration}}<br>Skills: {{skills}}<br>Apply by: {{deadline}}</p>",
	},
	dictionary.LocaleHindi: {
		subject: "नई इंटर्नशिप: {{title}}, {{company}}",
		text:    "नमस्ते {{name}},\n\nआपकी प्रोफ़ाइल से मेल खाती एक इंटर्नशिप मिली है ({{score}}% मेल)।\n\nभूमिका: {{title}}\nकंपनी: {{company}}\nस्थान: {{location}}\nअवधि: {{duration}}\nकौशल: {{skills}}\nअंतिम तिथि: {{deadline}}\n",
		html:    "<p>नमस्ते {{name}},</p><p>आपकी प्रोफ़ाइल से मेल खाती एक इंटर्नशिप मिली है (<b>{{score}}%</b> मेल)।</p><p>भूमिका: {{title}}<br>कंपनी: {{company}}<br>स्थान: {{location}}<br>अवधि: {{duration}}<br>कौशल: {{skills}}<br>अंतिम तिथि: {{deadline}}</p>",
	},
	dictionary.LocaleMarathi: {
		subject: "नवीन इंटर्नशिप: {{title}}, {{company}}",
		text:    "नमस्कार {{name}},\n\nतुमच्या प्रोफाइलशी जुळणारी इंटर्नशिप सापडली आहे ({{score}}% जुळणी).\n\nभूमिका: {{title}}\nकंपनी: {{company}}\nठिकाण: {{location}}\nकालावधी: {{duration}}\nकौशल्ये: {{skills}}\nअंतिम तारीख: {{deadline}}\n",
		html:    "<p>नमस्कार {{name}},</p><p>तुमच्या प्रोफाइलशी जुळणारी इंटर्नशिप सापडली आहे (<b>{{score}}%</b> जुळणी).</p><p>भूमिका: {{title}}<br>कंपनी: {{company}}<br>ठिकाण: {{location}}<br>कालावधी: {{duration}}<br>कौशल्ये: {{skills}}<br>अंतिम तारीख: {{deadline}}</p>",
	},
	dictionary.LocaleTamil: {
		subject: "புதிய பயிற்சி வாய்ப்பு: {{title}}, {{company}}",
		text:    "வணக்கம் {{name}},\n\nஉங்கள் சுயவிவரத்துடன் பொருந்தும் பயிற்சி கிடைத்துள்ளது ({{score}}% பொருத்தம்).\n\nபங்கு: {{title}}\nநிறுவனம்: {{company}}\nஇடம்: {{location}}\nகாலம்: {{duration}}\nதிறன்கள்: {{skills}}\nகடைசி தேதி: {{deadline}}\n",
		html:    "<p>வணக்கம் {{name}},</p><p>உங்கள் சுயவிவரத்துடன் பொருந்தும் பயிற்சி கிடைத்துள்ளது (<b>{{score}}%</b> பொருத்தம்).</p><p>பங்கு: {{title}}<br>நிறுவனம்: {{company}}<br>இடம்: {{location}}<br>காலம்: {{duration}}<br>திறன்கள்: {{skills}}<br>கடைசி தேதி: {{deadline}}</p>",
	},
	dictionary.LocaleTelugu: {
		subject: "కొత్త ఇంటర్న్‌షిప్: {{title}}, {{company}}",
		text:    "నమస్కారం {{name}},\n\nమీ ప్రొఫైల్‌కు సరిపోయే ఇంటర్న్‌షిప్ దొరికింది ({{score}}% సరిపోలిక).\n\nపాత్ర: {{title}}\nసంస్థ: {{company}}\nస్థలం: {{location}}\nవ్యవధి: {{duration}}\nనైపుణ్యాలు: {{skills}}\nచివరి తేదీ: {{deadline}}\n",
		html:    "<p>నమస్కారం {{name}},</p><p>మీ ప్రొఫైల్‌కు సరిపోయే ఇంటర్న్‌షిప్ దొరికింది (<b>{{score}}%</b> సరిపోలిక).</p><p>పాత్ర: {{title}}<br>సంస్థ: {{company}}<br>స్థలం: {{location}}<br>వ్యవధి: {{duration}}<br>నైపుణ్యాలు: {{skills}}<br>చివరి తేదీ: {{deadline}}</p>",
	},
}

func templateFor(loc dictionary.Locale) messageTemplate {
	if t, ok := templates[loc]; ok {
		return t
	}
	return templates[dictionary.LocaleEnglish]
}

// renderTemplate substitutes {{key}} placeholders and strips any that have
// no value, so a missing field never leaks braces into an outbound email.
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if i, ok := v.(int); ok {
			value = fmt.Sprintf("%d", i)
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}
