package catalog

var products = []Product{
	{
		ID:          "id001",
		Name:        "The minturn Pavilion st. Luke 's hospital new York city",
		Description: "Premium cotton t‑shirt with minimal branding.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/1.png",
		EmailImage:  "https://i.postimg.cc/9QTZnnmJ/1.png",
	},
	{
		ID:          "id002",
		Name:        "Eiffel Tower & Cafe on Boulevard de La Tour Maubourg, Paris, France",
		Description: "Low profile cap, adjustable strap.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/2.png",
		EmailImage:  "https://i.postimg.cc/CxDkQQMY/2.png",
	},
	{
		ID:          "id003",
		Name:        "Parisian building located on the Rue du Cloître Notre-Dame in Paris.",
		Description: "Heavy canvas tote for daily carry.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/3.png",
		EmailImage:  "https://i.postimg.cc/cLYwbb1d/3.png",
	},
	{
		ID:          "id004",
		Name:        "Beehive Hotel Ballarat, Victoria, Australia.",
		Description: "Comfortable pullover hoodie with minimal design.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/4.png",
		EmailImage:  "https://i.postimg.cc/nh7BPPVp/4.png",
	},
	{
		ID:          "id005",
		Name:        "Tempietto di San Pietro in Montorio in Rome, Italy.",
		Description: "Classic fit pants in premium fabric.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/5.png",
		EmailImage:  "https://i.postimg.cc/52vLRR9d/5.png",
	},
	{
		ID:          "id006",
		Name:        "A street view of Yaowarat, Bangkok, Thailand",
		Description: "Minimalist sneakers for everyday wear.",
		Price:       35000,
		Image:       "/images/productimages/facade-clothing/6.png",
		EmailImage:  "https://i.postimg.cc/sgS7NNfD/6.png",
	},
}
