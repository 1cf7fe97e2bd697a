package dictionary

// entry maps one localized term to its canonical English form. Tables are
// ordered: the first entry for a canonical term is its display form.
type entry struct {
	localized string
	canonical string
}

// canonicalUnits passes already-English duration units through unchanged.
var canonicalUnits = map[string]string{
	"hour":   "hour",
	"hours":  "hours",
	"day":    "day",
	"days":   "days",
	"month":  "month",
	"months": "months",
	"year":   "year",
	"years":  "years",
}

var units = map[Locale]map[string]string{
	LocaleHindi: {
		"घंटा":  "hour",
		"घंटे":  "hours",
		"दिन":   "days",
		"महीना": "month",
		"महीने": "months",
		"माह":   "months",
		"साल":   "years",
		"वर्ष":  "years",
	},
	LocaleMarathi: {
		"तास":   "hours",
		"दिवस":  "days",
		"महिना": "month",
		"महिने": "months",
		"वर्ष":  "years",
		"वर्षे": "years",
	},
	LocaleTamil: {
		"மணி":       "hours",
		"நாள்":      "day",
		"நாட்கள்":   "days",
		"மாதம்":     "month",
		"மாதங்கள்":  "months",
		"ஆண்டு":     "year",
		"ஆண்டுகள்":  "years",
		"வருடம்":    "year",
		"வருடங்கள்": "years",
	},
	LocaleTelugu: {
		"గంట":        "hour",
		"గంటలు":      "hours",
		"రోజు":       "day",
		"రోజులు":     "days",
		"నెల":        "month",
		"నెలలు":      "months",
		"సంవత్సరం":   "year",
		"సంవత్సరాలు": "years",
	},
}

var displayUnits = map[Locale]map[string]string{
	LocaleHindi: {
		"hour": "घंटा", "hours": "घंटे",
		"day": "दिन", "days": "दिन",
		"month": "महीना", "months": "महीने",
		"year": "साल", "years": "साल",
	},
	LocaleMarathi: {
		"hour": "तास", "hours": "तास",
		"day": "दिवस", "days": "दिवस",
		"month": "महिना", "months": "महिने",
		"year": "वर्ष", "years": "वर्षे",
	},
	LocaleTamil: {
		"hour": "மணி", "hours": "மணி",
		"day": "நாள்", "days": "நாட்கள்",
		"month": "மாதம்", "months": "மாதங்கள்",
		"year": "ஆண்டு", "years": "ஆண்டுகள்",
	},
	LocaleTelugu: {
		"hour": "గంట", "hours": "గంటలు",
		"day": "రోజు", "days": "రోజులు",
		"month": "నెల", "months": "నెలలు",
		"year": "సంవత్సరం", "years": "సంవత్సరాలు",
	},
}

var tables = map[Locale][]entry{
	LocaleHindi: {
		// skills
		{"पायथन", "python"},
		{"जावा", "java"},
		{"जावास्क्रिप्ट", "javascript"},
		{"वेब डेवलपमेंट", "web development"},
		{"डेटा एंट्री", "data entry"},
		{"डेटा विश्लेषण", "data analysis"},
		{"ग्राफिक डिज़ाइन", "graphic design"},
		{"कंटेंट लेखन", "content writing"},
		{"डिजिटल मार्केटिंग", "digital marketing"},
		{"सोशल मीडिया", "social media"},
		{"लेखांकन", "accounting"},
		{"टैली", "tally"},
		{"एक्सेल", "excel"},
		{"संचार कौशल", "communication"},
		{"ग्राहक सहायता", "customer support"},
		{"अध्यापन", "teaching"},
		{"वीडियो संपादन", "video editing"},
		{"सॉफ्टवेयर परीक्षण", "software testing"},
		{"एसक्यूएल", "sql"},
		{"मशीन लर्निंग", "machine learning"},
		// sectors
		{"सूचना प्रौद्योगिकी", "information technology"},
		{"वित्त", "finance"},
		{"विपणन", "marketing"},
		{"स्वास्थ्य सेवा", "healthcare"},
		{"शिक्षा", "education"},
		{"विनिर्माण", "manufacturing"},
		{"मीडिया", "media"},
		{"कृषि", "agriculture"},
		{"खुदरा", "retail"},
		{"मानव संसाधन", "human resources"},
		// locations
		{"मुंबई", "mumbai"},
		{"दिल्ली", "delhi"},
		{"नई दिल्ली", "new delhi"},
		{"बेंगलुरु", "bengaluru"},
		{"चेन्नई", "chennai"},
		{"हैदराबाद", "hyderabad"},
		{"पुणे", "pune"},
		{"कोलकाता", "kolkata"},
		{"अहमदाबाद", "ahmedabad"},
		{"जयपुर", "jaipur"},
		{"लखनऊ", "lucknow"},
		{"नागपुर", "nagpur"},
		{"रिमोट", "remote"},
		{"दूरस्थ", "remote"},
		// education phrases
		{"बी.टेक", "b.tech"},
		{"बीटेक", "b.tech"},
		{"प्रौद्योगिकी स्नातक", "bachelor of technology"},
		{"बी.ई", "b.e"},
		{"अभियांत्रिकी स्नातक", "bachelor of engineering"},
		{"बी.एससी", "b.sc"},
		{"विज्ञान स्नातक", "bachelor of science"},
		{"बी.कॉम", "b.com"},
		{"वाणिज्य स्नातक", "bachelor of commerce"},
		{"बी.ए", "b.a"},
		{"कला स्नातक", "bachelor of arts"},
		{"बीसीए", "bca"},
		{"एमसीए", "mca"},
		{"एमबीए", "mba"},
		{"एम.टेक", "m.tech"},
		{"एम.एससी", "m.sc"},
		{"डिप्लोमा", "diploma"},
		{"बी.फार्मा", "b.pharm"},
		{"एम.फार्मा", "m.pharm"},
		{"कंप्यूटर विज्ञान", "computer science"},
		{"सूचना प्रौद्योगिकी में बी.टेक", "b.tech information technology"},
		{"बी.टेक कंप्यूटर विज्ञान", "b.tech computer science"},
	},
	LocaleMarathi: {
		// skills
		{"पायथन", "python"},
		{"जावा", "java"},
		{"जावास्क्रिप्ट", "javascript"},
		{"वेब डेव्हलपमेंट", "web development"},
		{"डेटा एंट्री", "data entry"},
		{"डेटा विश्लेषण", "data analysis"},
		{"ग्राफिक डिझाइन", "graphic design"},
		{"मजकूर लेखन", "content writing"},
		{"डिजिटल मार्केटिंग", "digital marketing"},
		{"सोशल मीडिया", "social media"},
		{"लेखा", "accounting"},
		{"टॅली", "tally"},
		{"एक्सेल", "excel"},
		{"संवाद कौशल्य", "communication"},
		{"ग्राहक सेवा", "customer support"},
		{"अध्यापन", "teaching"},
		{"व्हिडिओ संपादन", "video editing"},
		{"सॉफ्टवेअर चाचणी", "software testing"},
		{"एसक्यूएल", "sql"},
		{"मशीन लर्निंग", "machine learning"},
		// sectors
		{"माहिती तंत्रज्ञान", "information technology"},
		{"वित्त", "finance"},
		{"विपणन", "marketing"},
		{"आरोग्य सेवा", "healthcare"},
		{"शिक्षण", "education"},
		{"उत्पादन", "manufacturing"},
		{"माध्यमे", "media"},
		{"शेती", "agriculture"},
		{"किरकोळ", "retail"},
		{"मनुष्यबळ", "human resources"},
		// locations
		{"मुंबई", "mumbai"},
		{"दिल्ली", "delhi"},
		{"बंगळूरु", "bengaluru"},
		{"चेन्नई", "chennai"},
		{"हैदराबाद", "hyderabad"},
		{"पुणे", "pune"},
		{"कोलकाता", "kolkata"},
		{"नागपूर", "nagpur"},
		{"नाशिक", "nashik"},
		{"औरंगाबाद", "aurangabad"},
		{"रिमोट", "remote"},
		{"दूरस्थ", "remote"},
		// education phrases
		{"बी.टेक", "b.tech"},
		{"बीटेक", "b.tech"},
		{"तंत्रज्ञान पदवी", "bachelor of technology"},
		{"बी.ई", "b.e"},
		{"अभियांत्रिकी पदवी", "bachelor of engineering"},
		{"बी.एससी", "b.sc"},
		{"विज्ञान पदवी", "bachelor of science"},
		{"बी.कॉम", "b.com"},
		{"वाणिज्य पदवी", "bachelor of commerce"},
		{"बी.ए", "b.a"},
		{"कला पदवी", "bachelor of arts"},
		{"बीसीए", "bca"},
		{"एमसीए", "mca"},
		{"एमबीए", "mba"},
		{"एम.टेक", "m.tech"},
		{"एम.एससी", "m.sc"},
		{"पदविका", "diploma"},
		{"डिप्लोमा", "diploma"},
		{"बी.फार्म", "b.pharm"},
		{"एम.फार्म", "m.pharm"},
		{"संगणक शास्त्र", "computer science"},
	},
	LocaleTamil: {
		// skills
		{"பைதான்", "python"},
		{"ஜாவா", "java"},
		{"ஜாவாஸ்கிரிப்ட்", "javascript"},
		{"வலை மேம்பாக்கம்", "web development"},
		{"தரவு உள்ளீடு", "data entry"},
		{"தரவு பகுப்பாய்வு", "data analysis"},
		{"வரைகலை வடிவமைப்பு", "graphic design"},
		{"உள்ளடக்க எழுத்து", "content writing"},
		{"டிஜிட்டல் மார்க்கெட்டிங்", "digital marketing"},
		{"சமூக ஊடகம்", "social media"},
		{"கணக்கியல்", "accounting"},
		{"டேலி", "tally"},
		{"எக்செல்", "excel"},
		{"தொடர்பு திறன்", "communication"},
		{"வாடிக்கையாளர் சேவை", "customer support"},
		{"கற்பித்தல்", "teaching"},
		{"வீடியோ எடிட்டிங்", "video editing"},
		{"மென்பொருள் சோதனை", "software testing"},
		{"எஸ்க்யூஎல்", "sql"},
		{"இயந்திர கற்றல்", "machine learning"},
		// sectors
		{"தகவல் தொழில்நுட்பம்", "information technology"},
		{"நிதி", "finance"},
		{"சந்தைப்படுத்தல்", "marketing"},
		{"சுகாதாரம்", "healthcare"},
		{"கல்வி", "education"},
		{"உற்பத்தி", "manufacturing"},
		{"ஊடகம்", "media"},
		{"வேளாண்மை", "agriculture"},
		{"சில்லறை வணிகம்", "retail"},
		{"மனித வளம்", "human resources"},
		// locations
		{"சென்னை", "chennai"},
		{"மும்பை", "mumbai"},
		{"டெல்லி", "delhi"},
		{"பெங்களூரு", "bengaluru"},
		{"ஹைதராபாத்", "hyderabad"},
		{"புனே", "pune"},
		{"கோயம்புத்தூர்", "coimbatore"},
		{"மதுரை", "madurai"},
		{"திருச்சி", "trichy"},
		{"தொலைநிலை", "remote"},
		{"ரிமோட்", "remote"},
		// education phrases
		{"பி.டெக்", "b.tech"},
		{"பிடெக்", "b.tech"},
		{"தொழில்நுட்ப இளங்கலை", "bachelor of technology"},
		{"பி.இ", "b.e"},
		{"பொறியியல் இளங்கலை", "bachelor of engineering"},
		{"பி.எஸ்சி", "b.sc"},
		{"அறிவியல் இளங்கலை", "bachelor of science"},
		{"பி.காம்", "b.com"},
		{"வணிகவியல் இளங்கலை", "bachelor of commerce"},
		{"பி.ஏ", "b.a"},
		{"கலை இளங்கலை", "bachelor of arts"},
		{"பிசிஏ", "bca"},
		{"எம்சிஏ", "mca"},
		{"எம்பிஏ", "mba"},
		{"எம்.டெக்", "m.tech"},
		{"எம்.எஸ்சி", "m.sc"},
		{"டிப்ளமோ", "diploma"},
		{"பி.பார்ம்", "b.pharm"},
		{"எம்.பார்ம்", "m.pharm"},
		{"கணினி அறிவியல்", "computer science"},
	},
	LocaleTelugu: {
		// skills
		{"పైథాన్", "python"},
		{"జావా", "java"},
		{"జావాస్క్రిప్ట్", "javascript"},
		{"వెబ్ డెవలప్‌మెంట్", "web development"},
		{"డేటా ఎంట్రీ", "data entry"},
		{"డేటా విశ్లేషణ", "data analysis"},
		{"గ్రాఫిక్ డిజైన్", "graphic design"},
		{"కంటెంట్ రైటింగ్", "content writing"},
		{"డిజిటల్ మార్కెటింగ్", "digital marketing"},
		{"సోషల్ మీడియా", "social media"},
		{"అకౌంటింగ్", "accounting"},
		{"టాలీ", "tally"},
		{"ఎక్సెల్", "excel"},
		{"కమ్యూనికేషన్", "communication"},
		{"కస్టమర్ సపోర్ట్", "customer support"},
		{"బోధన", "teaching"},
		{"వీడియో ఎడిటింగ్", "video editing"},
		{"సాఫ్ట్‌వేర్ టెస్టింగ్", "software testing"},
		{"ఎస్‌క్యూఎల్", "sql"},
		{"మెషిన్ లెర్నింగ్", "machine learning"},
		// sectors
		{"సమాచార సాంకేతికత", "information technology"},
		{"ఆర్థికం", "finance"},
		{"మార్కెటింగ్", "marketing"},
		{"ఆరోగ్య సంరక్షణ", "healthcare"},
		{"విద్య", "education"},
		{"తయారీ", "manufacturing"},
		{"మీడియా", "media"},
		{"వ్యవసాయం", "agriculture"},
		{"రిటైల్", "retail"},
		{"మానవ వనరులు", "human resources"},
		// locations
		{"హైదరాబాద్", "hyderabad"},
		{"ముంబై", "mumbai"},
		{"ఢిల్లీ", "delhi"},
		{"బెంగళూరు", "bengaluru"},
		{"చెన్నై", "chennai"},
		{"పుణె", "pune"},
		{"విశాఖపట్నం", "visakhapatnam"},
		{"విజయవాడ", "vijayawada"},
		{"వరంగల్", "warangal"},
		{"రిమోట్", "remote"},
		// education phrases
		{"బి.టెక్", "b.tech"},
		{"బిటెక్", "b.tech"},
		{"బ్యాచిలర్ ఆఫ్ టెక్నాలజీ", "bachelor of technology"},
		{"బి.ఈ", "b.e"},
		{"బ్యాచిలర్ ఆఫ్ ఇంజనీరింగ్", "bachelor of engineering"},
		{"బి.ఎస్సీ", "b.sc"},
		{"బ్యాచిలర్ ఆఫ్ సైన్స్", "bachelor of science"},
		{"బి.కామ్", "b.com"},
		{"బ్యాచిలర్ ఆఫ్ కామర్స్", "bachelor of commerce"},
		{"బి.ఏ", "b.a"},
		{"బ్యాచిలర్ ఆఫ్ ఆర్ట్స్", "bachelor of arts"},
		{"బిసిఏ", "bca"},
		{"ఎంసిఏ", "mca"},
		{"ఎంబిఏ", "mba"},
		{"ఎం.టెక్", "m.tech"},
		{"ఎం.ఎస్సీ", "m.sc"},
		{"డిప్లొమా", "diploma"},
		{"బి.ఫార్మ్", "b.pharm"},
		{"ఎం.ఫార్మ్", "m.pharm"},
		{"కంప్యూటర్ సైన్స్", "computer science"},
	},
}
