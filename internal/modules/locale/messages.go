// README: Server-side message catalog. Only messages produced by the API live here.
package locale

var messages = map[string]map[string]string{
	"en": {
		"errorNumPeople":         "Please enter a valid number of people.",
		"errorDateRequired":      "Please select both a start and a return date.",
		"errorDateOrder":         "The return date cannot be before the start date.",
		"errorTripLength":        "The trip must be at least one day long.",
		"errorMalformedResponse": "Failed to process the travel guide. The AI returned an unexpected format. Please try again.",
		"errorUnknown":           "An unknown error occurred. Please try again.",
		"tripDetailsSummary":     "Estimate for {people} people over {duration} days.",
		"yearsAgo":               "{count} years ago",
		"monthsAgo":              "{count} months ago",
		"daysAgo":                "{count} days ago",
		"hoursAgo":               "{count} hours ago",
		"minutesAgo":             "{count} minutes ago",
		"justNow":                "Just now",
	},
	"es": {
		"errorNumPeople":         "Introduce un número válido de personas.",
		"errorDateRequired":      "Selecciona una fecha de inicio y una de regreso.",
		"errorDateOrder":         "La fecha de regreso no puede ser anterior a la de inicio.",
		"errorTripLength":        "El viaje debe durar al menos un día.",
		"errorMalformedResponse": "No se pudo procesar la guía de viaje. La IA devolvió un formato inesperado. Inténtalo de nuevo.",
		"tripDetailsSummary":     "Estimación para {people} personas durante {duration} días.",
		"yearsAgo":               "hace {count} años",
		"monthsAgo":              "hace {count} meses",
		"daysAgo":                "hace {count} días",
		"hoursAgo":               "hace {count} horas",
		"minutesAgo":             "hace {count} minutos",
		"justNow":                "Ahora mismo",
	},
	"fr": {
		"errorNumPeople":         "Veuillez saisir un nombre de personnes valide.",
		"errorDateRequired":      "Veuillez choisir une date de départ et une date de retour.",
		"errorDateOrder":         "La date de retour ne peut pas précéder la date de départ.",
		"errorTripLength":        "Le voyage doit durer au moins un jour.",
		"errorMalformedResponse": "Impossible de traiter le guide. L'IA a renvoyé un format inattendu. Veuillez réessayer.",
		"yearsAgo":               "il y a {count} ans",
		"monthsAgo":              "il y a {count} mois",
		"daysAgo":                "il y a {count} jours",
		"hoursAgo":               "il y a {count} heures",
		"minutesAgo":             "il y a {count} minutes",
		"justNow":                "À l'instant",
	},
	"de": {
		"errorNumPeople":    "Bitte gib eine gültige Personenzahl ein.",
		"errorDateRequired": "Bitte wähle ein Start- und ein Rückreisedatum.",
		"errorDateOrder":    "Das Rückreisedatum darf nicht vor dem Startdatum liegen.",
		"yearsAgo":          "vor {count} Jahren",
		"monthsAgo":         "vor {count} Monaten",
		"daysAgo":           "vor {count} Tagen",
		"hoursAgo":          "vor {count} Stunden",
		"minutesAgo":        "vor {count} Minuten",
		"justNow":           "Gerade eben",
	},
}
