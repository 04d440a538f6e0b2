// ABOUTME: Additive reference data keyed by E-number, with risk levels.
// ABOUTME: Unknown codes resolve to a fixed caution placeholder, never an error.
package catalog

import (
	"strings"

	"github.com/harperreed/nutriscan/internal/models"
)

var additives = map[string]models.AdditiveDefinition{
	// Penguat rasa
	"E621": {
		Code: "E621", Name: "Monosodium Glutamat (MSG)", Formula: "C₅H₈NO₄Na",
		Structure: "Garam natrium dari asam glutamat",
		Desc:      "Penguat rasa gurih (umami), ditemukan oleh ilmuwan Jepang Kikunae Ikeda tahun 1908.",
		Impact:    "Dapat menyebabkan 'Chinese Restaurant Syndrome' (sakit kepala, mual, keringat) pada orang sensitif. Dalam dosis tinggi bersifat neurotoksin eksitotoksik.",
		Level:     models.RiskCaution,
	},
	"E627": {
		Code: "E627", Name: "Disodium Guanylate", Formula: "C₁₀H₁₂N₅Na₂O₈P",
		Structure: "Garam disodium dari guanosine-5'-monophosphate",
		Desc:      "Penguat rasa nukleotida, sering dikombinasikan dengan MSG untuk efek sinergis.",
		Impact:    "Dimetabolisme menjadi purin yang dapat meningkatkan kadar asam urat. Berbahaya bagi penderita gout/asam urat.",
		Level:     models.RiskCaution,
	},
	"E631": {
		Code: "E631", Name: "Disodium Inosinate", Formula: "C₁₀H₁₁N₄Na₂O₈P",
		Structure: "Garam disodium dari inosinic acid",
		Desc:      "Penguat rasa yang berasal dari daging/ikan, memberikan rasa umami kuat.",
		Impact:    "Seperti E627, dapat meningkatkan kadar asam urat dan memicu serangan gout.",
		Level:     models.RiskCaution,
	},

	// Pewarna
	"E100": {
		Code: "E100", Name: "Kurkumin (Turmeric)", Formula: "C₂₁H₂₀O₆",
		Structure: "Diferuloylmethane - senyawa polifenol",
		Desc:      "Pewarna kuning alami dari kunyit. Juga memiliki sifat antioksidan.",
		Impact:    "Aman dikonsumsi. Bahkan memiliki manfaat anti-inflamasi dan antioksidan.",
		Level:     models.RiskSafe,
	},
	"E102": {
		Code: "E102", Name: "Tartrazine", Formula: "C₁₆H₉N₄Na₃O₉S₂",
		Structure: "Pewarna azo sintetis - mengandung gugus azo (-N=N-)",
		Desc:      "Pewarna kuning lemon sintetis, banyak digunakan di makanan dan obat.",
		Impact:    "Penyebab reaksi alergi paling umum (ruam, asma, urtikaria). Terkait dengan penurunan jumlah sperma dan hiperaktivitas anak.",
		Level:     models.RiskDanger,
	},
	"E110": {
		Code: "E110", Name: "Sunset Yellow FCF", Formula: "C₁₆H₁₀N₂Na₂O₇S₂",
		Structure: "Pewarna azo sulfonat - monoazo",
		Desc:      "Pewarna kuning-oranye sintetis untuk makanan dan minuman.",
		Impact:    "Dilarang di beberapa negara Eropa. Pemicu kuat hiperaktivitas (ADHD) pada anak dan reaksi pada penderita alergi aspirin.",
		Level:     models.RiskDanger,
	},
	"E124": {
		Code: "E124", Name: "Ponceau 4R (Cochineal Red)", Formula: "C₂₀H₁₁N₂Na₃O₁₀S₃",
		Structure: "Pewarna azo trisulfonat",
		Desc:      "Pewarna merah strawberry sintetis untuk makanan, minuman, dan kosmetik.",
		Impact:    "Bersifat karsinogenik pada hewan uji. Dapat memicu asma, urtikaria, dan hiperaktivitas pada anak.",
		Level:     models.RiskDanger,
	},
	"E129": {
		Code: "E129", Name: "Allura Red AC", Formula: "C₁₈H₁₄N₂Na₂O₈S₂",
		Structure: "Pewarna azo disulfonat",
		Desc:      "Pewarna merah sintetis pengganti amaranth (E123).",
		Impact:    "Dapat memicu reaksi alergi dan dikaitkan dengan perubahan perilaku pada anak-anak.",
		Level:     models.RiskCaution,
	},
	"E133": {
		Code: "E133", Name: "Brilliant Blue FCF", Formula: "C₃₇H₃₄N₂Na₂O₉S₃",
		Structure: "Pewarna triarylmethane",
		Desc:      "Pewarna biru sintetis untuk makanan, minuman, dan obat-obatan.",
		Impact:    "Dicurigai neurotoksik dan sulit dicerna oleh tubuh. Dapat menyebabkan reaksi alergi.",
		Level:     models.RiskCaution,
	},
	"E150c": {
		Code: "E150c", Name: "Karamel Amonia", Formula: "Polimer Kompleks",
		Structure: "Produk reaksi Maillard antara gula dan amonia",
		Desc:      "Pewarna coklat tua untuk cola, kecap, dan saus.",
		Impact:    "Dapat mengandung 4-MEI (4-methylimidazole) yang bersifat karsinogenik pada hewan laboratorium.",
		Level:     models.RiskCaution,
	},
	"E150d": {
		Code: "E150d", Name: "Karamel Sulfit Amonia", Formula: "Polimer Kompleks",
		Structure: "Produk reaksi gula dengan amonia dan sulfit",
		Desc:      "Pewarna coklat tahan asam untuk minuman soda dan bir.",
		Impact:    "Kadar 4-MEI lebih tinggi dari E150c. Berpotensi memicu masalah pencernaan.",
		Level:     models.RiskCaution,
	},

	// Pengawet
	"E200": {
		Code: "E200", Name: "Sorbic Acid", Formula: "C₆H₈O₂",
		Structure: "Asam karboksilat tak jenuh - CH₃-CH=CH-CH=CH-COOH",
		Desc:      "Pengawet anti-jamur alami, pertama diisolasi dari buah rowan.",
		Impact:    "Aman untuk sebagian besar orang. Jarang menyebabkan reaksi alergi kulit.",
		Level:     models.RiskSafe,
	},
	"E202": {
		Code: "E202", Name: "Potassium Sorbate", Formula: "C₆H₇KO₂",
		Structure: "Garam kalium dari asam sorbat",
		Desc:      "Pengawet anti-jamur yang larut air, sering digunakan dalam minuman.",
		Impact:    "Relatif aman, namun bisa menyebabkan reaksi alergi kulit pada sebagian kecil orang.",
		Level:     models.RiskSafe,
	},
	"E211": {
		Code: "E211", Name: "Sodium Benzoate", Formula: "C₇H₅NaO₂",
		Structure: "Garam natrium dari asam benzoat - C₆H₅COONa",
		Desc:      "Pengawet untuk minuman asam, sambal, dan saus.",
		Impact:    "BAHAYA! Dapat bereaksi dengan Vitamin C (asam askorbat) membentuk BENZENA yang bersifat karsinogenik (penyebab leukemia). Juga pemicu hiperaktivitas.",
		Level:     models.RiskDanger,
	},
	"E250": {
		Code: "E250", Name: "Sodium Nitrite", Formula: "NaNO₂",
		Structure: "Garam natrium dari asam nitrit - Na⁺ NO₂⁻",
		Desc:      "Pengawet daging olahan dan pemberi warna merah karakteristik.",
		Impact:    "SANGAT BAHAYA! Dapat bereaksi dengan amina membentuk NITROSAMIN (karsinogen kuat) terutama saat dimasak suhu tinggi. Juga mengurangi kapasitas oksigen darah.",
		Level:     models.RiskDanger,
	},
	"E282": {
		Code: "E282", Name: "Calcium Propionate", Formula: "C₆H₁₀CaO₄",
		Structure: "Garam kalsium dari asam propionat - Ca(C₂H₅COO)₂",
		Desc:      "Anti-jamur untuk roti dan produk bakery.",
		Impact:    "Umumnya aman, namun dapat memicu migrain dan perubahan perilaku/iritabilitas pada anak-anak sensitif.",
		Level:     models.RiskSafe,
	},
	"E316": {
		Code: "E316", Name: "Sodium Erythorbate", Formula: "C₆H₇NaO₆",
		Structure: "Stereoisomer dari sodium ascorbate",
		Desc:      "Antioksidan untuk mencegah oksidasi dan mempertahankan warna daging.",
		Impact:    "Relatif aman. Dapat menyebabkan gangguan pencernaan ringan jika dikonsumsi berlebihan.",
		Level:     models.RiskSafe,
	},
	"E319": {
		Code: "E319", Name: "TBHQ (Tert-Butylhydroquinone)", Formula: "C₁₀H₁₄O₂",
		Structure: "Turunan hidroquinon dengan gugus tert-butil",
		Desc:      "Antioksidan sintetis untuk minyak dan lemak.",
		Impact:    "Dalam dosis tinggi dapat menyebabkan mual. Potensi karsinogenik masih diteliti.",
		Level:     models.RiskCaution,
	},

	// Emulsifier & stabilizer
	"E322": {
		Code: "E322", Name: "Lecithin", Formula: "Fosfolipid Kompleks",
		Structure: "Campuran fosfatidilkolin, fosfatidiletanolamin, dll",
		Desc:      "Emulsifier alami dari kedelai atau telur.",
		Impact:    "Sangat aman, bahkan bermanfaat untuk kesehatan otak (sumber kolin/fosfatidilkolin).",
		Level:     models.RiskSafe,
	},
	"E330": {
		Code: "E330", Name: "Citric Acid", Formula: "C₆H₈O₇",
		Structure: "Asam trikarboksilat - HOOC-CH₂-C(OH)(COOH)-CH₂-COOH",
		Desc:      "Pengatur keasaman dan antioksidan alami dari jeruk.",
		Impact:    "Sangat aman. Berperan dalam siklus Krebs metabolisme tubuh.",
		Level:     models.RiskSafe,
	},
	"E331": {
		Code: "E331", Name: "Sodium Citrate", Formula: "Na₃C₆H₅O₇",
		Structure: "Garam trisodium dari asam sitrat",
		Desc:      "Pengatur keasaman dan pengontrol rasa pada minuman.",
		Impact:    "Aman untuk konsumsi. Juga digunakan sebagai antikoagulan dalam transfusi darah.",
		Level:     models.RiskSafe,
	},
	"E338": {
		Code: "E338", Name: "Phosphoric Acid", Formula: "H₃PO₄",
		Structure: "Asam anorganik triprotik",
		Desc:      "Pemberi rasa asam khas pada minuman cola.",
		Impact:    "Mengikis email gigi dan menurunkan kepadatan tulang secara signifikan jika dikonsumsi berlebihan.",
		Level:     models.RiskCaution,
	},
	"E385": {
		Code: "E385", Name: "Calcium Disodium EDTA", Formula: "C₁₀H₁₂CaN₂Na₂O₈",
		Structure: "Kompleks khelat EDTA dengan kalsium dan natrium",
		Desc:      "Sekuestran logam untuk menjaga warna dan rasa makanan.",
		Impact:    "Dapat mengganggu penyerapan mineral esensial (zinc, besi). Hindari konsumsi berlebihan.",
		Level:     models.RiskCaution,
	},
	"E407": {
		Code: "E407", Name: "Carrageenan", Formula: "Polisakarida",
		Structure: "Galaktan tersulfat dari rumput laut merah",
		Desc:      "Pengental dan stabilizer dari rumput laut, umum di produk susu.",
		Impact:    "Dapat menyebabkan peradangan usus (inflamasi) dan gangguan pencernaan kronis pada beberapa orang.",
		Level:     models.RiskCaution,
	},
	"E410": {
		Code: "E410", Name: "Locust Bean Gum", Formula: "Polisakarida",
		Structure: "Galaktomanan dari biji carob",
		Desc:      "Pengental alami dari biji pohon carob.",
		Impact:    "Aman untuk konsumsi. Dapat membantu menurunkan kolesterol.",
		Level:     models.RiskSafe,
	},
	"E412": {
		Code: "E412", Name: "Guar Gum", Formula: "Polisakarida",
		Structure: "Galaktomanan dari biji guar",
		Desc:      "Pengental dan stabilizer dari biji tanaman guar.",
		Impact:    "Umumnya aman. Dalam jumlah besar dapat menyebabkan kembung dan gas.",
		Level:     models.RiskSafe,
	},
	"E422": {
		Code: "E422", Name: "Glycerol", Formula: "C₃H₈O₃",
		Structure: "Triol - HOCH₂-CHOH-CH₂OH",
		Desc:      "Humektan dan pemanis dalam permen karet dan makanan.",
		Impact:    "Sangat aman. Merupakan komponen alami lemak dalam tubuh.",
		Level:     models.RiskSafe,
	},
	"E440": {
		Code: "E440", Name: "Pectin", Formula: "Polisakarida",
		Structure: "Poligalakturonat dari kulit jeruk/apel",
		Desc:      "Pengental dan gelling agent alami dari buah.",
		Impact:    "Sangat aman. Bermanfaat sebagai serat larut untuk kesehatan pencernaan.",
		Level:     models.RiskSafe,
	},
	"E450": {
		Code: "E450", Name: "Diphosphates", Formula: "Na₄P₂O₇ / K₄P₂O₇",
		Structure: "Garam dari asam pirofosfat",
		Desc:      "Emulsifier dan pengembang untuk roti dan daging olahan.",
		Impact:    "Konsumsi fosfat berlebih dapat mengganggu keseimbangan kalsium dan menyebabkan masalah tulang.",
		Level:     models.RiskCaution,
	},
	"E451": {
		Code: "E451", Name: "Triphosphates", Formula: "Na₅P₃O₁₀",
		Structure: "Sodium tripolyphosphate",
		Desc:      "Pengenyal dan pengikat air pada daging olahan.",
		Impact:    "Konsumsi fosfat berlebih dapat merusak ginjal dan memicu osteoporosis.",
		Level:     models.RiskCaution,
	},
	"E452": {
		Code: "E452", Name: "Polyphosphates", Formula: "(NaPO₃)n",
		Structure: "Polimer fosfat rantai panjang",
		Desc:      "Emulsifier dan stabilizer untuk keju dan daging.",
		Impact:    "Dapat mengganggu penyerapan mineral (kalsium, magnesium, zat besi).",
		Level:     models.RiskCaution,
	},
	"E471": {
		Code: "E471", Name: "Mono & Diglycerides", Formula: "-",
		Structure: "Ester parsial gliserol dengan asam lemak",
		Desc:      "Emulsifier lemak untuk roti, margarin, dan es krim.",
		Impact:    "Umumnya aman, namun sering berasal dari minyak hidrogenasi yang mungkin mengandung lemak trans.",
		Level:     models.RiskSafe,
	},

	// Pengembang
	"E500": {
		Code: "E500", Name: "Sodium Bicarbonate", Formula: "NaHCO₃",
		Structure: "Sodium hydrogen carbonate - baking soda",
		Desc:      "Pengembang dan pengatur pH dalam kue dan biskuit.",
		Impact:    "Sangat aman untuk makanan. Juga digunakan sebagai antasida.",
		Level:     models.RiskSafe,
	},
	"E501": {
		Code: "E501", Name: "Potassium Carbonate", Formula: "K₂CO₃",
		Structure: "Garam kalium dari asam karbonat",
		Desc:      "Pengembang dan pengatur keasaman.",
		Impact:    "Aman untuk konsumsi dalam jumlah normal pada makanan.",
		Level:     models.RiskSafe,
	},
	"E503": {
		Code: "E503", Name: "Ammonium Carbonate", Formula: "(NH₄)₂CO₃",
		Structure: "Garam amonium dari asam karbonat",
		Desc:      "Pengembang untuk biskuit dan kue kering.",
		Impact:    "Aman karena terurai menjadi gas saat pemanggangan.",
		Level:     models.RiskSafe,
	},
}

// AdditiveInfo resolves an E-number to its definition, matching the code
// case-insensitively (some canonical codes carry a lowercase suffix, like
// E150c). Unrecognized codes never fail; they resolve to a fixed
// "Unknown Additive" placeholder at caution level so display always has
// something to show.
func AdditiveInfo(code string) models.AdditiveDefinition {
	if info, ok := additives[code]; ok {
		return info
	}
	for canonical, info := range additives {
		if strings.EqualFold(canonical, code) {
			return info
		}
	}
	return models.AdditiveDefinition{
		Code:      code,
		Name:      "Unknown Additive",
		Formula:   "-",
		Structure: "-",
		Desc:      "Informasi tidak tersedia.",
		Impact:    "Dampak kesehatan tidak diketahui.",
		Level:     models.RiskCaution,
	}
}

// UniqueAdditivesOf flattens the additive codes of the given entries and
// de-duplicates them, preserving first-occurrence order.
func UniqueAdditivesOf(entries []models.FoodEntry) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, e := range entries {
		for _, code := range e.Additives {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}
