// Package translate provides the translation provider capability:
// text translation, language detection, travel phrases and translated
// destination content.
package translate

// DefaultCategory is used when a phrase category is not recognized
const DefaultCategory = "basic"

// PhraseCategories enumerates the supported phrase categories
var PhraseCategories = []string{"basic", "emergency", "food", "transport", "accommodation"}

// destinationLanguages maps well-known destinations to their primary
// language. Lookup is exact and case-sensitive; misses fall back to English.
var destinationLanguages = map[string]string{
	"Paris":          "french",
	"London":         "english",
	"Tokyo":          "japanese",
	"New York":       "english",
	"Sydney":         "english",
	"Rome":           "italian",
	"Barcelona":      "spanish",
	"Bangkok":        "thai",
	"Dubai":          "arabic",
	"Singapore":      "english",
	"Istanbul":       "turkish",
	"Berlin":         "german",
	"Amsterdam":      "dutch",
	"Toronto":        "english",
	"Mexico City":    "spanish",
	"Cairo":          "arabic",
	"Mumbai":         "hindi",
	"Seoul":          "korean",
	"Rio de Janeiro": "portuguese",
	"Zurich":         "german",
}

// languageCodes maps language names to their ISO 639-1 codes
var languageCodes = map[string]string{
	"english":    "en",
	"french":     "fr",
	"spanish":    "es",
	"japanese":   "ja",
	"german":     "de",
	"italian":    "it",
	"thai":       "th",
	"arabic":     "ar",
	"turkish":    "tr",
	"dutch":      "nl",
	"hindi":      "hi",
	"korean":     "ko",
	"portuguese": "pt",
}

// phrasebook holds curated travel phrases per language and category.
// Keys are phrase identifiers shared across languages.
var phrasebook = map[string]map[string]map[string]string{
	"french": {
		"basic": {
			"hello":     "Bonjour",
			"goodbye":   "Au revoir",
			"please":    "S'il vous plaît",
			"thank_you": "Merci",
			"yes":       "Oui",
			"no":        "Non",
			"excuse_me": "Excusez-moi",
		},
		"emergency": {
			"help":            "Au secours !",
			"call_the_police": "Appelez la police !",
			"i_need_a_doctor": "J'ai besoin d'un médecin",
			"hospital":        "Hôpital",
			"im_lost":         "Je suis perdu",
		},
		"food": {
			"the_menu_please": "Le menu, s'il vous plaît",
			"the_bill_please": "L'addition, s'il vous plaît",
			"water":           "De l'eau",
			"im_vegetarian":   "Je suis végétarien",
			"delicious":       "Délicieux",
		},
		"transport": {
			"where_is_the_station": "Où est la gare ?",
			"how_much_is_the_fare": "Combien coûte le billet ?",
			"taxi":                 "Taxi",
			"airport":              "Aéroport",
			"one_ticket_please":    "Un billet, s'il vous plaît",
		},
		"accommodation": {
			"i_have_a_reservation": "J'ai une réservation",
			"check_in":             "Enregistrement",
			"check_out":            "Départ",
			"wifi_password":        "Le mot de passe du wifi",
			"room_key":             "La clé de la chambre",
		},
	},
	"spanish": {
		"basic": {
			"hello":     "Hola",
			"goodbye":   "Adiós",
			"please":    "Por favor",
			"thank_you": "Gracias",
			"yes":       "Sí",
			"no":        "No",
			"excuse_me": "Disculpe",
		},
		"emergency": {
			"help":            "¡Socorro!",
			"call_the_police": "¡Llame a la policía!",
			"i_need_a_doctor": "Necesito un médico",
			"hospital":        "Hospital",
			"im_lost":         "Estoy perdido",
		},
		"food": {
			"the_menu_please": "El menú, por favor",
			"the_bill_please": "La cuenta, por favor",
			"water":           "Agua",
			"im_vegetarian":   "Soy vegetariano",
			"delicious":       "Delicioso",
		},
		"transport": {
			"where_is_the_station": "¿Dónde está la estación?",
			"how_much_is_the_fare": "¿Cuánto cuesta el billete?",
			"taxi":                 "Taxi",
			"airport":              "Aeropuerto",
			"one_ticket_please":    "Un billete, por favor",
		},
		"accommodation": {
			"i_have_a_reservation": "Tengo una reserva",
			"check_in":             "Registro de entrada",
			"check_out":            "Salida",
			"wifi_password":        "La contraseña del wifi",
			"room_key":             "La llave de la habitación",
		},
	},
	"japanese": {
		"basic": {
			"hello":     "こんにちは",
			"goodbye":   "さようなら",
			"please":    "お願いします",
			"thank_you": "ありがとうございます",
			"yes":       "はい",
			"no":        "いいえ",
			"excuse_me": "すみません",
		},
		"emergency": {
			"help":            "助けて！",
			"call_the_police": "警察を呼んでください！",
			"i_need_a_doctor": "医者が必要です",
			"hospital":        "病院",
			"im_lost":         "道に迷いました",
		},
		"food": {
			"the_menu_please": "メニューをお願いします",
			"the_bill_please": "お会計をお願いします",
			"water":           "水",
			"im_vegetarian":   "私はベジタリアンです",
			"delicious":       "おいしい",
		},
		"transport": {
			"where_is_the_station": "駅はどこですか？",
			"how_much_is_the_fare": "運賃はいくらですか?",
			"taxi":                 "タクシー",
			"airport":              "空港",
			"one_ticket_please":    "切符を一枚お願いします",
		},
		"accommodation": {
			"i_have_a_reservation": "予約しています",
			"check_in":             "チェックイン",
			"check_out":            "チェックアウト",
			"wifi_password":        "Wi-Fiのパスワード",
			"room_key":             "部屋の鍵",
		},
	},
	"german": {
		"basic": {
			"hello":     "Hallo",
			"goodbye":   "Auf Wiedersehen",
			"please":    "Bitte",
			"thank_you": "Danke",
			"yes":       "Ja",
			"no":        "Nein",
			"excuse_me": "Entschuldigung",
		},
		"emergency": {
			"help":            "Hilfe!",
			"call_the_police": "Rufen Sie die Polizei!",
			"i_need_a_doctor": "Ich brauche einen Arzt",
			"hospital":        "Krankenhaus",
			"im_lost":         "Ich habe mich verlaufen",
		},
		"food": {
			"the_menu_please": "Die Speisekarte, bitte",
			"the_bill_please": "Die Rechnung, bitte",
			"water":           "Wasser",
			"im_vegetarian":   "Ich bin Vegetarier",
			"delicious":       "Lecker",
		},
		"transport": {
			"where_is_the_station": "Wo ist der Bahnhof?",
			"how_much_is_the_fare": "Was kostet die Fahrkarte?",
			"taxi":                 "Taxi",
			"airport":              "Flughafen",
			"one_ticket_please":    "Eine Fahrkarte, bitte",
		},
		"accommodation": {
			"i_have_a_reservation": "Ich habe eine Reservierung",
			"check_in":             "Einchecken",
			"check_out":            "Auschecken",
			"wifi_password":        "Das WLAN-Passwort",
			"room_key":             "Der Zimmerschlüssel",
		},
	},
	"italian": {
		"basic": {
			"hello":     "Ciao",
			"goodbye":   "Arrivederci",
			"please":    "Per favore",
			"thank_you": "Grazie",
			"yes":       "Sì",
			"no":        "No",
			"excuse_me": "Mi scusi",
		},
		"emergency": {
			"help":            "Aiuto!",
			"call_the_police": "Chiamate la polizia!",
			"i_need_a_doctor": "Ho bisogno di un medico",
			"hospital":        "Ospedale",
			"im_lost":         "Mi sono perso",
		},
		"food": {
			"the_menu_please": "Il menù, per favore",
			"the_bill_please": "Il conto, per favore",
			"water":           "Acqua",
			"im_vegetarian":   "Sono vegetariano",
			"delicious":       "Delizioso",
		},
		"transport": {
			"where_is_the_station": "Dov'è la stazione?",
			"how_much_is_the_fare": "Quanto costa il biglietto?",
			"taxi":                 "Taxi",
			"airport":              "Aeroporto",
			"one_ticket_please":    "Un biglietto, per favore",
		},
		"accommodation": {
			"i_have_a_reservation": "Ho una prenotazione",
			"check_in":             "Check-in",
			"check_out":            "Check-out",
			"wifi_password":        "La password del wifi",
			"room_key":             "La chiave della camera",
		},
	},
}

// languageCode resolves a language name or code to an ISO code,
// defaulting to the input itself when unknown.
func languageCode(language string) string {
	if code, ok := languageCodes[language]; ok {
		return code
	}
	return language
}

// lookupPhrases returns the phrase map for a language and category.
// Unknown categories fall back to basic; unknown languages return nil.
func lookupPhrases(language, category string) map[string]string {
	categories, ok := phrasebook[language]
	if !ok {
		return nil
	}
	phrases, ok := categories[category]
	if !ok {
		phrases = categories[DefaultCategory]
	}
	return phrases
}
