// Package i18n provides the bilingual string table for user-facing text.
//
// Lookup is a pure function over (language, key): a missing entry falls back
// to the key itself so a forgotten translation degrades to something visible
// and greppable instead of an empty string. Spanish is the primary language
// of the site; English is the secondary.
package i18n

import "golang.org/x/text/language"

// Supported language codes.
const (
	LangES = "es"
	LangEN = "en"
)

// matcher resolves Accept-Language values against the supported set.
// Spanish first: it wins ties and unknown inputs.
var matcher = language.NewMatcher([]language.Tag{
	language.Spanish,
	language.English,
})

// Match resolves an Accept-Language header value to a supported language
// code. Empty or unparseable input returns def; def itself is normalized so
// a misconfigured default still yields a supported code.
func Match(acceptLanguage, def string) string {
	if def != LangEN {
		def = LangES
	}
	if acceptLanguage == "" {
		return def
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	if idx == 1 {
		return LangEN
	}
	return LangES
}

// T returns the translation for key in lang, falling back first to Spanish
// and finally to the key itself.
func T(lang, key string) string {
	if lang == LangEN {
		if s, ok := tableEN[key]; ok {
			return s
		}
	}
	if s, ok := tableES[key]; ok {
		return s
	}
	return key
}

// tableES is the primary string table, carried over from the site copy.
var tableES = map[string]string{
	"site.title":        "JR Automotores",
	"site.tagline":      "Usados seleccionados",
	"vehicle.sold":      "Vendido",
	"vehicle.available": "Disponible",

	"contact.success": "¡Mensaje enviado! Te contactaremos pronto.",
	"contact.error":   "No pudimos enviar tu mensaje. Intentá de nuevo.",
	"login.invalid":   "Contraseña incorrecta",

	"chatbot.greeting":         "¡Hola! ¿En qué podemos ayudarte?",
	"chatbot.unknown":          "No tengo una respuesta para eso. Elegí una opción del menú.",
	"chatbot.option.hours":     "Horarios de atención",
	"chatbot.option.location":  "¿Dónde estamos?",
	"chatbot.option.inventory": "Vehículos disponibles",
	"chatbot.option.prices":    "Precios y financiación",
	"chatbot.option.documents": "Documentación necesaria",
	"chatbot.option.contact":   "Hablar con un vendedor",

	"chatbot.answer.hours":     "Atendemos de lunes a viernes de 9 a 18 hs y sábados de 9 a 13 hs.",
	"chatbot.answer.location":  "Estamos en Av. Siempreviva 742, Lanús, Buenos Aires.",
	"chatbot.answer.inventory": "Podés ver todos los vehículos disponibles en la sección Vehículos del sitio.",
	"chatbot.answer.prices":    "Los precios están publicados en cada vehículo. Ofrecemos financiación bancaria y tomamos tu usado.",
	"chatbot.answer.documents": "Para comprar necesitás DNI y, si financiás, recibos de sueldo o constancia de ingresos.",
	"chatbot.answer.contact":   "Escribinos por el formulario de contacto o por WhatsApp y un vendedor te responde a la brevedad.",
}

// tableEN covers the same keys for the English version of the site.
var tableEN = map[string]string{
	"site.title":        "JR Automotores",
	"site.tagline":      "Hand-picked used cars",
	"vehicle.sold":      "Sold",
	"vehicle.available": "Available",

	"contact.success": "Message sent! We will get back to you soon.",
	"contact.error":   "We could not send your message. Please try again.",
	"login.invalid":   "Incorrect password",

	"chatbot.greeting":         "Hi! How can we help you?",
	"chatbot.unknown":          "I don't have an answer for that. Please pick an option from the menu.",
	"chatbot.option.hours":     "Opening hours",
	"chatbot.option.location":  "Where are we?",
	"chatbot.option.inventory": "Available vehicles",
	"chatbot.option.prices":    "Prices and financing",
	"chatbot.option.documents": "Required documents",
	"chatbot.option.contact":   "Talk to a salesperson",

	"chatbot.answer.hours":     "We are open Monday to Friday 9am-6pm and Saturdays 9am-1pm.",
	"chatbot.answer.location":  "We are at Av. Siempreviva 742, Lanús, Buenos Aires.",
	"chatbot.answer.inventory": "You can browse every available vehicle in the Vehicles section of the site.",
	"chatbot.answer.prices":    "Prices are listed on each vehicle. We offer bank financing and take your used car as part payment.",
	"chatbot.answer.documents": "To buy you need a national ID and, if financing, payslips or proof of income.",
	"chatbot.answer.contact":   "Write to us through the contact form or WhatsApp and a salesperson will reply shortly.",
}
