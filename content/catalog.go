// Package content, sitenin sayfa/section kataloğunu tanımlar:
// hangi sayfada hangi section'lar var, her birinin varsayılan içeriği
// ne ve yapısal koleksiyonların elemanları hangi alanlardan oluşuyor.
//
// Alan adları editörlerle kayıtlı dökümanlar arasındaki sözleşmedir ve
// TEK kaynaktan gelir: backend'in ilk açılış içeriği de bu varsayılanlardan
// üretilir (bkz. SeedDefaults) — katalog ile veritabanının ayrı ayrı alan
// adları bildirmesi mümkün değildir.
//
// Varsayılan içerik iki işe yarar: backend'e ulaşılamadığında sayfanın
// yine de düzenlenebilir açılması ve hiç kaydedilmemiş bir section'ın
// boş görünmemesi.
package content

import (
	"github.com/assana/cms/editor"
	"github.com/assana/cms/models"
)

// FAQFields, soru-cevap koleksiyonunun eleman alanları.
var FAQFields = []editor.Field{
	{Key: "questionHeading", Label: "Question", Kind: editor.KindText},
	{Key: "answerPara", Label: "Answer", Kind: editor.KindTextarea},
}

// TestimonialFields, hasta yorumu koleksiyonunun eleman alanları.
// "patientFeeback" yazımı kayıtlı dökümanlardan gelir — düzeltmek
// mevcut içeriği görünmez yapar.
var TestimonialFields = []editor.Field{
	{Key: "patientImg", Label: "Photo", Kind: editor.KindImage},
	{Key: "patientName", Label: "Name", Kind: editor.KindText},
	{Key: "patientProblem", Label: "Treatment", Kind: editor.KindText},
	{Key: "patientFeeback", Label: "Feedback", Kind: editor.KindTextarea},
}

// TeamMemberFields, ekip üyesi koleksiyonunun eleman alanları.
var TeamMemberFields = []editor.Field{
	{Key: "profileImage", Label: "Photo", Kind: editor.KindImage},
	{Key: "name", Label: "Name", Kind: editor.KindText},
	{Key: "role", Label: "Role", Kind: editor.KindText},
	{Key: "title", Label: "Title", Kind: editor.KindText},
	{Key: "description", Label: "Bio", Kind: editor.KindTextarea},
}

// ServiceFields, akordeon hizmet koleksiyonunun eleman alanları.
var ServiceFields = []editor.Field{
	{Key: "serviceHeading", Label: "Service", Kind: editor.KindText},
	{Key: "serviceOpenPara1", Label: "Paragraph 1", Kind: editor.KindTextarea},
	{Key: "serviceOpenPara2", Label: "Paragraph 2", Kind: editor.KindTextarea},
}

// ProductFields, ürün kartı koleksiyonunun eleman alanları.
var ProductFields = []editor.Field{
	{Key: "image", Label: "Image", Kind: editor.KindImage},
	{Key: "imageAlt", Label: "Image alt text", Kind: editor.KindText},
	{Key: "label", Label: "Label", Kind: editor.KindText},
	{Key: "title", Label: "Title", Kind: editor.KindText},
	{Key: "description", Label: "Description", Kind: editor.KindTextarea},
	{Key: "price", Label: "Price", Kind: editor.KindText},
}

// HomeSections, ana sayfanın section tanımları.
var HomeSections = []editor.SectionSpec{
	{
		Key: "banner",
		Default: models.Document{
			"mainTitle":              "Expert Colorectal & Gut Wellness Care",
			"subtitle":               "Book a consultation with our specialists",
			"introductionParagraph":  "",
			"experienceSectionTitle": "",
			"experienceItems":        []any{},
			"backgroundImage":        "",
		},
	},
	{
		Key: "services",
		Default: models.Document{
			"componentHeading": "Our Services",
			"services":         []any{},
		},
	},
	{
		Key: "why-assana",
		Default: models.Document{
			"mainTitle": "Why Assana?",
			"subtitle":  "",
		},
	},
	{
		Key: "services-component",
		Default: models.Document{
			"componentHeading": "",
			"services":         []any{},
		},
	},
	{
		Key: "video",
		Default: models.Document{
			"Heading":    "",
			"subHeading": "",
			"videoLink":  "",
		},
	},
	{
		Key: "patient-feedback",
		Default: models.Document{
			"componentHeading":    "What Our Patients Say",
			"componentSubHeading": "",
			"testimonials":        []any{},
		},
	},
	{
		Key: "asked-questions",
		Default: models.Document{
			"componentHeading": "Frequently Asked Questions",
			"faqs":             []any{},
		},
	},
	{
		Key: "get-started",
		Default: models.Document{
			"Heading":         "",
			"subHeading":      "",
			"backgroundImage": "",
			"button1Text":     "Start Free Symptom Check",
			"button2Text":     "Get Started",
		},
	},
}

// AboutSections, hakkımızda sayfasının section tanımları.
var AboutSections = []editor.SectionSpec{
	{
		Key: "hero",
		Default: models.Document{
			"aboutBanner":      "",
			"bannerHeading":    "About Us",
			"bannerSubHeading": "",
		},
	},
	{
		Key: "mission-vision",
		Default: models.Document{
			"missionHeading": "Our Mission",
			"missionText":    "",
			"visionHeading":  "Our Vision",
			"visionText":     "",
		},
	},
	{
		Key: "team",
		Default: models.Document{
			"sectionHeading": "Meet our Team",
			"teamMembers":    []any{},
		},
	},
	{
		Key: "why-choose",
		Default: models.Document{
			"heading":     "Why Choose Us",
			"subtitle":    "",
			"buttonText":  "",
			"description": "",
		},
	},
}

// ContactSections, iletişim sayfasının section tanımları.
var ContactSections = []editor.SectionSpec{
	{
		Key: "contact",
		Default: models.Document{
			"heading":         "Ready to Feel Better Naturally?",
			"text1":           "",
			"text2":           "",
			"backgroundImage": "",
		},
	},
}

// ProductSections, ürün sayfasının section tanımları.
var ProductSections = []editor.SectionSpec{
	{
		Key: "hero",
		Default: models.Document{
			"backgroundImage": "",
			"title":           "Find the Right Supplements for Your Lifestyle",
			"description":     "",
			"buttonText":      "Book a Consultation",
		},
	},
	{
		Key: "main",
		Default: models.Document{
			"title":    "Discover Your Nutrition Essentials",
			"products": []any{},
		},
	},
}

// ColonHydrotherapySections, kolon hidroterapi sayfasının section tanımları.
var ColonHydrotherapySections = []editor.SectionSpec{
	{
		Key: "hero",
		Default: models.Document{
			"backgroundImage": "",
			"title":           "Colon Hydrotherapy",
			"description":     "",
			"buttonText":      "Book a Consultation",
		},
	},
	{
		Key: "main",
		Default: models.Document{
			"sections": []any{},
			"conclusion": map[string]any{
				"text":       "",
				"buttonText": "Book a Consultation",
			},
		},
	},
}

// Pages, sayfa anahtarından section tanımlarına eşleme.
var Pages = map[string][]editor.SectionSpec{
	"home":               HomeSections,
	"about":              AboutSections,
	"contactmain":        ContactSections,
	"product":            ProductSections,
	"colon-hydrotherapy": ColonHydrotherapySections,
}

// PageSections, verilen sayfanın section tanımlarını döner.
// Bilinmeyen sayfa için nil döner.
func PageSections(pageKey string) []editor.SectionSpec {
	return Pages[pageKey]
}
