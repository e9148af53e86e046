package content

import "github.com/turbohomes/website/pkg/locale"

var services = []Service{
	{
		ID:   "foreclosure-assistance",
		Name: locale.Text("Foreclosure Assistance", "Asistencia de Ejecución Hipotecaria"),
		Slug: locale.Text("foreclosure-assistance", "asistencia-ejecucion-hipotecaria"),
		Description: locale.Text(
			"Sell your home before foreclosure impacts your credit. We offer fast solutions.",
			"Vende tu casa antes de que la ejecución hipotecaria afecte tu crédito. Ofrecemos soluciones rápidas.",
		),
		Keywords: locale.New(
			[]string{"foreclosure assistance", "stop foreclosure", "sell before foreclosure", "avoid foreclosure"},
			[]string{"asistencia ejecución hipotecaria", "detener ejecución hipotecaria", "vender antes de ejecución", "evitar ejecución hipotecaria"},
		),
	},
	{
		ID:   "short-sales",
		Name: locale.Text("Short Sales", "Ventas Cortas (Short Sales)"),
		Slug: locale.Text("short-sales", "ventas-cortas"),
		Description: locale.Text(
			"Navigate the short sale process smoothly and avoid foreclosure on your property.",
			"Navega el proceso de venta corta sin problemas y evita la ejecución hipotecaria de tu propiedad.",
		),
		Keywords: locale.New(
			[]string{"short sale help", "short sale process", "avoid foreclosure short sale", "sell house short sale"},
			[]string{"ayuda venta corta", "proceso venta corta", "evitar ejecución venta corta", "vender casa venta corta"},
		),
	},
	{
		ID:   "cash-home-sales",
		Name: locale.Text("Cash Home Sales", "Ventas de Casas en Efectivo"),
		Slug: locale.Text("cash-home-sales", "ventas-casas-efectivo"),
		Description: locale.Text(
			"Get a competitive cash offer for your home within 24 hours. Fast, simple, no hassle.",
			"Obtén una oferta competitiva en efectivo por tu casa en 24 horas. Rápido, simple, sin complicaciones.",
		),
		Keywords: locale.New(
			[]string{"cash home sales", "cash offer home", "sell house cash", "get cash for house"},
			[]string{"ventas casas efectivo", "oferta efectivo casa", "vender casa efectivo", "obtener efectivo por casa"},
		),
	},
	{
		ID:   "probate-sales",
		Name: locale.Text("Probate Sales", "Ventas Testamentarias (Probate)"),
		Slug: locale.Text("probate-sales", "ventas-testamentarias"),
		Description: locale.Text(
			"Simplify the process of selling a property in probate with our hassle-free estate liquidation services.",
			"Simplifica el proceso de vender una propiedad en sucesión testamentaria con nuestros servicios de liquidación de bienes sin complicaciones.",
		),
		Keywords: locale.New(
			[]string{"probate sales", "sell probate property", "estate liquidation", "sell house in probate"},
			[]string{"ventas testamentarias", "vender propiedad testamentaria", "liquidación de bienes", "vender casa en sucesión"},
		),
	},
	{
		ID:   "divorce-property-sales",
		Name: locale.Text("Divorce Property Sales", "Ventas de Propiedades por Divorcio"),
		Slug: locale.Text("divorce-property-sales", "ventas-propiedades-divorcio"),
		Description: locale.Text(
			"Confidential and fast property sales solutions for couples going through a divorce.",
			"Soluciones confidenciales y rápidas de venta de propiedades para parejas en proceso de divorcio.",
		),
		Keywords: locale.New(
			[]string{"divorce property sale", "sell house during divorce", "fast divorce sale", "confidential property sale"},
			[]string{"venta propiedad divorcio", "vender casa durante divorcio", "venta rápida divorcio", "venta confidencial propiedad"},
		),
	},
	{
		ID:   "inherited-homes",
		Name: locale.Text("Inherited Homes", "Casas Heredadas"),
		Slug: locale.Text("inherited-homes", "casas-heredadas"),
		Description: locale.Text(
			"Easily sell inherited properties, even from out of state. We handle everything.",
			"Vende fácilmente propiedades heredadas, incluso desde fuera del estado. Nos encargamos de todo.",
		),
		Keywords: locale.New(
			[]string{"sell inherited home", "inherited property sale", "sell house inheritance", "estate sale home"},
			[]string{"vender casa heredada", "venta propiedad heredada", "vender casa herencia", "venta de bienes raíces herencia"},
		),
	},
	{
		ID:   "distressed-homeowners",
		Name: locale.Text("Distressed Homeowners Solutions", "Soluciones para Propietarios en Dificultades"),
		Slug: locale.Text("distressed-homeowners-solutions", "soluciones-propietarios-dificultades"),
		Description: locale.Text(
			"Customized options to help distressed homeowners sell their property quickly and move forward.",
			"Opciones personalizadas para ayudar a propietarios en dificultades a vender su propiedad rápidamente y seguir adelante.",
		),
		Keywords: locale.New(
			[]string{"distressed homeowner", "sell distressed property", "help selling house", "fast property solutions"},
			[]string{"propietario dificultades", "vender propiedad dificultades", "ayuda vender casa", "soluciones rápidas propiedad"},
		),
	},
}
