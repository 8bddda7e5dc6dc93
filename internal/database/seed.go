package database

import "github.com/villastay/property-reservation/internal/model"

// DefaultProperties are the initial catalog rows inserted when absent so
// the frontend always has entries to display.  Ids are fixed to keep the
// catalog stable across environments.
var DefaultProperties = []model.Property{
	{
		ID:          1,
		Name:        "Apartamento en El Poblado",
		Location:    "Cl. 9 #37, El Poblado, Medellín, Antioquia",
		Price:       450000,
		Description: "Hermoso apartamento en una de las mejores zonas de Medellín, cerca de centros comerciales y restaurantes.",
		ImageURL:    "https://images.ctfassets.net/8lc7xdlkm4kt/33L5l2aTXdJAAEfw55n0Yh/7472faf6b498fdc11091fc65a5c69165/render-sobre-planos-saint-michel.jpg",
	},
	{
		ID:          2,
		Name:        "Casa colonial en Cartagena",
		Location:    "10-46 Media Luna 10, Getsemaní, Cartagena de Indias, Bolívar",
		Price:       500000,
		Description: "Encantadora casa colonial con vistas al mar, en el centro histórico de Cartagena.",
		ImageURL:    "https://media-luna-hostel.cartagena-hotels.net/data/Photos/1080x700w/10392/1039228/1039228984/cartagena-media-luna-hostel-photo-1.JPEG",
	},
	{
		ID:          3,
		Name:        "Loft en Bogotá",
		Location:    "Av Suba #125-98, Bogotá",
		Price:       320000,
		Description: "Moderno loft en el centro de Bogotá, ideal para viajeros de negocios.",
		ImageURL:    "https://latinexclusive.com/sites/default/files/styles/main_property_slide/public/api_file_downloads/3862061_1.jpg?itok=qxmdZ3oA",
	},
	{
		ID:          4,
		Name:        "Cabaña en el Eje Cafetero",
		Location:    "2 kilómetros antes de termales Santa Rosa por la desviación a la Paloma vereda, San RAMON, Santa Rosa de Cabal, Risaralda",
		Price:       800000,
		Description: "Cabaña rústica rodeada de naturaleza, perfecta para desconectarse y disfrutar del café colombiano.",
		ImageURL:    "https://asoaturquindio.com/wp-content/uploads/2023/09/cabanas-la-herradura-4-1.jpg",
	},
	{
		ID:          5,
		Name:        "Hostal en Santa Marta",
		Location:    "Cl. 14 #3-58, Comuna 2, Santa Marta, Magdalena",
		Price:       50000,
		Description: "Hostal económico a pocos minutos de la playa, ideal para mochileros y aventureros.",
		ImageURL:    "https://cf.bstatic.com/xdata/images/hotel/max500/151251581.jpg?k=02b942afead8be7bea67cd35453662d8a6ae787336565b884c55aca6dbedcd08&o=",
	},
}
