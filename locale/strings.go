package locale

// strings2 holds the translation tables, keyed by base language.
// English is the reference table; the lookup falls back to it for any
// key a translation is missing.
var strings2 = map[string]table{
	"en": {
		"shape.oval":      "Oval",
		"shape.rectangle": "Rectangle",
		"shape.diamond":   "Diamond",
		"shape.star":      "Star",

		"blend.normal":   "Normal",
		"blend.multiply": "Multiply",
		"blend.screen":   "Screen",
		"blend.overlay":  "Overlay",

		"prop.inner_radius":   "Inner radius",
		"prop.outer_radius":   "Outer radius",
		"prop.opacity":        "Opacity",
		"prop.center":         "Center",
		"prop.aspect_ratio":   "Aspect ratio",
		"prop.rotation":       "Rotation",
		"prop.shape":          "Shape",
		"prop.shape_strength": "Shape strength",
		"prop.use_color":      "Use color",
		"prop.color":          "Vignette color",
		"prop.blend":          "Blend mode",

		"preset.classic":    "Classic",
		"preset.subtle":     "Subtle",
		"preset.strong":     "Strong",
		"preset.spotlight":  "Spotlight",
		"preset.portrait":   "Portrait",
		"preset.widescreen": "Widescreen",
		"preset.frame":      "Frame",
		"preset.letterbox":  "Letterbox",
		"preset.diamond":    "Diamond",
		"preset.gem":        "Gem",
		"preset.star":       "Star",
		"preset.sheriff":    "Sheriff",
		"preset.noir":       "Noir",
		"preset.sepia":      "Sepia",
		"preset.frost":      "Frost",
		"preset.sunset":     "Sunset",
	},
	"de": {
		"shape.oval":      "Oval",
		"shape.rectangle": "Rechteck",
		"shape.diamond":   "Raute",
		"shape.star":      "Stern",

		"blend.normal":   "Normal",
		"blend.multiply": "Multiplizieren",
		"blend.screen":   "Negativ multiplizieren",
		"blend.overlay":  "Überlagern",

		"prop.inner_radius":   "Innerer Radius",
		"prop.outer_radius":   "Äußerer Radius",
		"prop.opacity":        "Deckkraft",
		"prop.center":         "Zentrum",
		"prop.aspect_ratio":   "Seitenverhältnis",
		"prop.rotation":       "Drehung",
		"prop.shape":          "Form",
		"prop.shape_strength": "Formstärke",
		"prop.use_color":      "Farbe verwenden",
		"prop.color":          "Vignettenfarbe",
		"prop.blend":          "Mischmodus",

		"preset.classic":    "Klassisch",
		"preset.subtle":     "Dezent",
		"preset.strong":     "Stark",
		"preset.spotlight":  "Scheinwerfer",
		"preset.portrait":   "Porträt",
		"preset.widescreen": "Breitbild",
		"preset.frame":      "Rahmen",
		"preset.letterbox":  "Letterbox",
		"preset.diamond":    "Raute",
		"preset.gem":        "Edelstein",
		"preset.star":       "Stern",
		"preset.sheriff":    "Sheriff",
		"preset.noir":       "Noir",
		"preset.sepia":      "Sepia",
		"preset.frost":      "Frost",
		"preset.sunset":     "Sonnenuntergang",
	},
	"es": {
		"shape.oval":      "Óvalo",
		"shape.rectangle": "Rectángulo",
		"shape.diamond":   "Rombo",
		"shape.star":      "Estrella",

		"blend.normal":   "Normal",
		"blend.multiply": "Multiplicar",
		"blend.screen":   "Trama",
		"blend.overlay":  "Superponer",

		"prop.inner_radius":   "Radio interior",
		"prop.outer_radius":   "Radio exterior",
		"prop.opacity":        "Opacidad",
		"prop.center":         "Centro",
		"prop.aspect_ratio":   "Relación de aspecto",
		"prop.rotation":       "Rotación",
		"prop.shape":          "Forma",
		"prop.shape_strength": "Intensidad de la forma",
		"prop.use_color":      "Usar color",
		"prop.color":          "Color de viñeta",
		"prop.blend":          "Modo de fusión",

		"preset.classic":    "Clásico",
		"preset.subtle":     "Sutil",
		"preset.strong":     "Fuerte",
		"preset.spotlight":  "Foco",
		"preset.portrait":   "Retrato",
		"preset.widescreen": "Panorámico",
		"preset.frame":      "Marco",
		"preset.letterbox":  "Letterbox",
		"preset.diamond":    "Rombo",
		"preset.gem":        "Gema",
		"preset.star":       "Estrella",
		"preset.sheriff":    "Sheriff",
		"preset.noir":       "Noir",
		"preset.sepia":      "Sepia",
		"preset.frost":      "Escarcha",
		"preset.sunset":     "Atardecer",
	},
	"fr": {
		"shape.oval":      "Ovale",
		"shape.rectangle": "Rectangle",
		"shape.diamond":   "Losange",
		"shape.star":      "Étoile",

		"blend.normal":   "Normal",
		"blend.multiply": "Produit",
		"blend.screen":   "Superposition",
		"blend.overlay":  "Incrustation",

		"prop.inner_radius":   "Rayon intérieur",
		"prop.outer_radius":   "Rayon extérieur",
		"prop.opacity":        "Opacité",
		"prop.center":         "Centre",
		"prop.aspect_ratio":   "Rapport d'aspect",
		"prop.rotation":       "Rotation",
		"prop.shape":          "Forme",
		"prop.shape_strength": "Intensité de la forme",
		"prop.use_color":      "Utiliser la couleur",
		"prop.color":          "Couleur de vignette",
		"prop.blend":          "Mode de fusion",

		"preset.classic":    "Classique",
		"preset.subtle":     "Subtil",
		"preset.strong":     "Fort",
		"preset.spotlight":  "Projecteur",
		"preset.portrait":   "Portrait",
		"preset.widescreen": "Écran large",
		"preset.frame":      "Cadre",
		"preset.letterbox":  "Letterbox",
		"preset.diamond":    "Losange",
		"preset.gem":        "Gemme",
		"preset.star":       "Étoile",
		"preset.sheriff":    "Shérif",
		"preset.noir":       "Noir",
		"preset.sepia":      "Sépia",
		"preset.frost":      "Givre",
		"preset.sunset":     "Coucher de soleil",
	},
	"ja": {
		"shape.oval":      "楕円",
		"shape.rectangle": "長方形",
		"shape.diamond":   "ひし形",
		"shape.star":      "星",

		"blend.normal":   "通常",
		"blend.multiply": "乗算",
		"blend.screen":   "スクリーン",
		"blend.overlay":  "オーバーレイ",

		"prop.inner_radius":   "内側半径",
		"prop.outer_radius":   "外側半径",
		"prop.opacity":        "不透明度",
		"prop.center":         "中心",
		"prop.aspect_ratio":   "アスペクト比",
		"prop.rotation":       "回転",
		"prop.shape":          "形状",
		"prop.shape_strength": "形状の強さ",
		"prop.use_color":      "色を使用",
		"prop.color":          "ビネットの色",
		"prop.blend":          "ブレンドモード",

		"preset.classic":    "クラシック",
		"preset.subtle":     "控えめ",
		"preset.strong":     "強め",
		"preset.spotlight":  "スポットライト",
		"preset.portrait":   "ポートレート",
		"preset.widescreen": "ワイドスクリーン",
		"preset.frame":      "フレーム",
		"preset.letterbox":  "レターボックス",
		"preset.diamond":    "ひし形",
		"preset.gem":        "ジェム",
		"preset.star":       "星",
		"preset.sheriff":    "保安官",
		"preset.noir":       "ノワール",
		"preset.sepia":      "セピア",
		"preset.frost":      "フロスト",
		"preset.sunset":     "夕焼け",
	},
	"ru": {
		"shape.oval":      "Овал",
		"shape.rectangle": "Прямоугольник",
		"shape.diamond":   "Ромб",
		"shape.star":      "Звезда",

		"blend.normal":   "Обычный",
		"blend.multiply": "Умножение",
		"blend.screen":   "Экран",
		"blend.overlay":  "Перекрытие",

		"prop.inner_radius":   "Внутренний радиус",
		"prop.outer_radius":   "Внешний радиус",
		"prop.opacity":        "Непрозрачность",
		"prop.center":         "Центр",
		"prop.aspect_ratio":   "Соотношение сторон",
		"prop.rotation":       "Поворот",
		"prop.shape":          "Форма",
		"prop.shape_strength": "Сила формы",
		"prop.use_color":      "Использовать цвет",
		"prop.color":          "Цвет виньетки",
		"prop.blend":          "Режим наложения",

		"preset.classic":    "Классика",
		"preset.subtle":     "Лёгкая",
		"preset.strong":     "Сильная",
		"preset.spotlight":  "Прожектор",
		"preset.portrait":   "Портрет",
		"preset.widescreen": "Широкий экран",
		"preset.frame":      "Рамка",
		"preset.letterbox":  "Леттербокс",
		"preset.diamond":    "Ромб",
		"preset.gem":        "Самоцвет",
		"preset.star":       "Звезда",
		"preset.sheriff":    "Шериф",
		"preset.noir":       "Нуар",
		"preset.sepia":      "Сепия",
		"preset.frost":      "Иней",
		"preset.sunset":     "Закат",
	},
}
