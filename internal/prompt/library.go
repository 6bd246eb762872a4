package prompt

// Style 艺术家的一个创作时期或风格
type Style struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Prompt string `json:"-"`
}

// Artist 风格库中的艺术家
type Artist struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Styles []Style `json:"styles"`
}

var library = []Artist{
	{
		Key:  "picasso",
		Name: "Pablo Picasso",
		Styles: []Style{
			{Key: "blue_period", Name: "Blue Period", Prompt: "in the melancholic Blue Period of Pablo Picasso: cool blue tones, elongated forms, heavy emotion, painterly brushwork, focus on canine expression"},
			{Key: "rose_period", Name: "Rose Period", Prompt: "in Picasso's Rose Period: warm pinks and oranges, softness, circus-inspired tenderness, simplified forms, emotional warmth"},
			{Key: "analytical_cubism", Name: "Analytical Cubism", Prompt: "as Analytical Cubism by Picasso: fragmented, geometric, overlapping muted planes, multiple viewpoints, faceted structure"},
			{Key: "synthetic_cubism", Name: "Synthetic Cubism", Prompt: "as Synthetic Cubism by Picasso: bright colors, collage-like simplifications, bold shapes, decorative planes"},
			{Key: "line_sketch", Name: "Line Sketch", Prompt: "as a minimalist single-line drawing in the playful spirit of Picasso's La Chèvre: continuous black line, white background, whimsical contours"},
		},
	},
	{
		Key:  "munch",
		Name: "Edvard Munch",
		Styles: []Style{
			{Key: "scream", Name: "The Scream / Anxiety", Prompt: "in the style of Munch's The Scream: swirling skies, distorted figures, existential dread, intense expressionism"},
			{Key: "symbolist", Name: "Symbolist Phase", Prompt: "as Munch's symbolist phase: ghostly, spiritual, emotional atmosphere, muted palette, ethereal"},
			{Key: "frieze", Name: "Frieze of Life", Prompt: "in Munch's Frieze of Life: themes of love, death, loneliness, muted expressionism, narrative tension"},
			{Key: "late_impressionism", Name: "Late Impressionism", Prompt: "as late Munch: looser brushwork, more naturalistic, French-influenced impressionism"},
			{Key: "woodcuts", Name: "Woodcuts & Lithographs", Prompt: "as Munch woodcut/lithograph: bold graphic simplification in black and white, strong contrasts"},
		},
	},
	{
		Key:  "dali",
		Name: "Salvador Dalí",
		Styles: []Style{
			{Key: "classic_surrealism", Name: "Classic Surrealism", Prompt: "as Dalí classic surrealism: barren landscapes, melting objects, long shadows, dream logic"},
			{Key: "paranoiac", Name: "Paranoiac-Critical Method", Prompt: "as Dalí paranoiac-critical: double images, hidden shapes in landscapes, uncanny illusions"},
			{Key: "religious_mythic", Name: "Religious/Mythic Phase", Prompt: "as Dalí religious/mythic: dramatic skies, spiritual dream elements, theatrical lighting"},
			{Key: "animal_hybrids", Name: "Animal Hybrids", Prompt: "as Dalí: surreal animal hybrids, long-limbed creatures, symbolic totems, elongated anatomy"},
			{Key: "hyperrealist", Name: "Hyperrealist Surrealism", Prompt: "as Dalí hyperrealist surrealism: crystalline detail with impossible dream logic, precise rendering"},
		},
	},
	{
		Key:  "vangogh",
		Name: "Vincent van Gogh",
		Styles: []Style{
			{Key: "starry_night", Name: "Starry Night", Prompt: "as Van Gogh Starry Night: swirling skies, luminous cosmic light, impasto brushstrokes"},
			{Key: "sunflowers", Name: "Sunflowers/Still Lifes", Prompt: "as Van Gogh sunflowers/still life: bright thick brushstrokes, glowing bursts of color"},
			{Key: "arles_portraits", Name: "Arles Portraits", Prompt: "as Van Gogh Arles portraits: warm yellows and blues, intimate portrait, bold impasto"},
			{Key: "early_dutch", Name: "Early Dutch Phase", Prompt: "as early Dutch Van Gogh: earthy browns, dark realism like The Potato Eaters"},
			{Key: "japanese", Name: "Japanese-Inspired", Prompt: "as Van Gogh's Japanese-inspired: flatter colors, bold outlines, ukiyo-e influence"},
		},
	},
	{
		Key:  "matisse",
		Name: "Henri Matisse",
		Styles: []Style{
			{Key: "fauvism", Name: "Fauvism", Prompt: "as Matisse fauvism: flat, vibrant unnatural colors, bold outlines, joyful design"},
			{Key: "interiors", Name: "Decorative Interiors", Prompt: "as Matisse The Red Room: patterned richly colored interiors, decorative rhythm"},
			{Key: "simplified_portraits", Name: "Simplified Portraits", Prompt: "as Matisse simplified portraits: reduced shapes, strong contrasts, elegant economy"},
			{Key: "cutouts", Name: "Cut-outs", Prompt: "as Matisse late paper cut-outs: collage abstraction, bold silhouettes, playful arrangement"},
		},
	},
	{
		Key:  "klimt",
		Name: "Gustav Klimt",
		Styles: []Style{
			{Key: "golden", Name: "Golden Phase", Prompt: "as Klimt golden phase: mosaic-like gold leaf patterns, ornamental aura, decorative abstraction"},
			{Key: "portraits", Name: "Portraits", Prompt: "as Klimt portraits: elongated forms, stylized patterned backgrounds, sensual elegance"},
			{Key: "landscapes", Name: "Landscapes", Prompt: "as Klimt landscapes: mosaic-like stylized nature, decorative tessellations"},
			{Key: "sketches", Name: "Sketches", Prompt: "as Klimt sketches: minimalist sensual line drawings, delicate graphite"},
		},
	},
	{
		Key:  "monet",
		Name: "Claude Monet",
		Styles: []Style{
			{Key: "water_lilies", Name: "Water Lilies", Prompt: "as Monet water lilies: hazy pastel reflections, atmospheric softness"},
			{Key: "haystacks_cathedral", Name: "Haystacks / Rouen Cathedral", Prompt: "as Monet light studies: changing daytimes, shimmering color, soft edges"},
			{Key: "urban", Name: "Urban Impressionism", Prompt: "as Monet urban impressionism: street or train scenes, loose brushwork, airy light"},
			{Key: "early_realism", Name: "Early Realism", Prompt: "as early Monet realism: more defined, structured, naturalistic"},
		},
	},
	{
		Key:  "bacon",
		Name: "Francis Bacon",
		Styles: []Style{
			{Key: "screaming_popes", Name: "Screaming Popes", Prompt: "as Francis Bacon screaming popes: grotesque distortions, existential terror, smeared paint"},
			{Key: "triptychs", Name: "Triptychs", Prompt: "as Bacon triptychs: fragmented subject across panels, stark space, psychological intensity"},
			{Key: "distorted_portraits", Name: "Distorted Portraits", Prompt: "as Bacon distorted portrait: blurred twisted forms, raw flesh-like textures"},
			{Key: "animalistic_abstractions", Name: "Animalistic Abstractions", Prompt: "as Bacon animalistic abstractions: flesh-like smears resembling creatures, visceral"},
		},
	},
	{
		Key:  "mucha",
		Name: "Alphonse Mucha",
		Styles: []Style{
			{Key: "posters", Name: "Posters", Prompt: "as Mucha posters: flowing lines, elegant pastel gradients, decorative framing"},
			{Key: "seasonal", Name: "Seasonal Panels", Prompt: "as Mucha seasonal panels: nature motifs tied to seasons, ornate panels"},
			{Key: "decorative_panels", Name: "Decorative Panels", Prompt: "as Mucha decorative panels: floral ornamental borders, Art Nouveau elegance"},
			{Key: "lithographs", Name: "Lithographs", Prompt: "as Mucha lithograph: strong graphic black-and-white linework, poster-like"},
		},
	},
	{
		Key:  "hokusai",
		Name: "Hokusai",
		Styles: []Style{
			{Key: "great_wave", Name: "The Great Wave", Prompt: "as Hokusai The Great Wave: bold stylized wave-like fur patterns, dynamic foam shapes"},
			{Key: "mount_fuji", Name: "Mount Fuji Series", Prompt: "as Hokusai Mount Fuji series: symbolic backdrops, crisp woodblock flat colors"},
			{Key: "nature_animals", Name: "Nature & Animals", Prompt: "as Hokusai nature/animals: crisp linework, stylized patterns, ukiyo-e clarity"},
			{Key: "manga_sketches", Name: "Manga Sketches", Prompt: "as Hokusai manga sketches: playful loose ink drawings, spontaneous"},
		},
	},
	{
		Key:  "warhol",
		Name: "Andy Warhol",
		Styles: []Style{
			{Key: "marilyn", Name: "Marilyn-style Silkscreens", Prompt: "as Warhol Marilyn silkscreens: repeated portraits in neon colors, pop-art halftone"},
			{Key: "silkscreen_imperfections", Name: "Silkscreen Imperfections", Prompt: "as Warhol silkscreen: halftone, imperfect overlays, off-register colors"},
			{Key: "commercial_flat", Name: "Commercial Flat", Prompt: "as Warhol commercial flat: advertising bold look, flat graphic fills"},
			{Key: "sketches", Name: "Sketches", Prompt: "as Warhol sketches: quick minimalist line work, spontaneous"},
		},
	},
	{
		Key:  "basquiat",
		Name: "Jean-Michel Basquiat",
		Styles: []Style{
			{Key: "neo_expressionist", Name: "Neo-expressionist graffiti", Prompt: "as Basquiat: raw lines, crowns, chaotic energy, graffiti scrawl"},
			{Key: "text_symbols", Name: "Text & Symbols", Prompt: "as Basquiat: overlays with words, anatomy motifs, symbolic icons"},
			{Key: "primitive_figures", Name: "Primitive Figures", Prompt: "as Basquiat: mask-like raw figures, primitive power"},
			{Key: "color_block", Name: "Color-block Compositions", Prompt: "as Basquiat: fragmented energy-driven forms, color blocks and scribbles"},
		},
	},
	{
		Key:  "caravaggio",
		Name: "Caravaggio",
		Styles: []Style{
			{Key: "chiaroscuro", Name: "Chiaroscuro", Prompt: "as Caravaggio chiaroscuro: extreme light/dark realism, dramatic spotlit portrait"},
			{Key: "religious", Name: "Religious Dramatic Scenes", Prompt: "as Caravaggio: religious dramatic scene, spotlight composition, deep shadows"},
			{Key: "still_life", Name: "Still-life Naturalism", Prompt: "as Caravaggio still-life: earthy realism, tactile textures, subdued palette"},
		},
	},
	{
		Key:  "rembrandt",
		Name: "Rembrandt",
		Styles: []Style{
			{Key: "portrait_chiaroscuro", Name: "Portrait Chiaroscuro", Prompt: "as Rembrandt: soulful eyes in soft golden light, rich chiaroscuro"},
			{Key: "self_portrait", Name: "Self-Portrait style", Prompt: "as Rembrandt self-portrait style: expressive brushwork, textured emotion, warm browns"},
			{Key: "etchings", Name: "Sketch Etchings", Prompt: "as Rembrandt etchings: loose black ink forms, crosshatching"},
		},
	},
	{
		Key:  "bosch",
		Name: "Hieronymus Bosch",
		Styles: []Style{
			{Key: "hellscapes", Name: "Fantastical Hellscapes", Prompt: "as Bosch: grotesque creatures and fantastical hellscape, surreal allegory"},
			{Key: "hybrid_animals", Name: "Hybrid Animals", Prompt: "as Bosch: mythic dog-bird-fish hybrid animals, medieval surrealism"},
			{Key: "surreal_allegories", Name: "Surreal Allegories", Prompt: "as Bosch: symbolic dreamlike scene, teeming details"},
		},
	},
	{
		Key:  "mondrian",
		Name: "Piet Mondrian",
		Styles: []Style{
			{Key: "geometric", Name: "Geometric Abstraction", Prompt: "as Mondrian: grid abstraction, primary colors, black lines, white ground"},
			{Key: "early_naturalism", Name: "Early Naturalism", Prompt: "as early Mondrian: softer representational style before abstraction"},
		},
	},
	{
		Key:  "pollock",
		Name: "Jackson Pollock",
		Styles: []Style{
			{Key: "drip", Name: "Drip Technique", Prompt: "as Pollock: chaotic layers of drip paint, energetic all-over composition"},
			{Key: "action", Name: "Action Painting", Prompt: "as Pollock action painting: gestural immersive composition, dynamic splatters"},
		},
	},
	{
		Key:  "miro",
		Name: "Joan Miró",
		Styles: []Style{
			{Key: "biomorphic", Name: "Biomorphic Abstraction", Prompt: "as Miró: playful biomorphic shapes, surreal symbols, vivid primaries"},
			{Key: "childlike", Name: "Childlike Primitivism", Prompt: "as Miró: whimsical simplified figures, naive energy"},
		},
	},
	{
		Key:  "lichtenstein",
		Name: "Roy Lichtenstein",
		Styles: []Style{
			{Key: "comic_pop", Name: "Comic Pop", Prompt: "as Lichtenstein comic pop: Ben-Day dots, speech caption, dramatic expressions"},
			{Key: "whaam", Name: "Whaam!-style", Prompt: "as Lichtenstein Whaam!: bold dynamic comic panels, graphic onomatopoeia"},
		},
	},
	{
		Key:  "haring",
		Name: "Keith Haring",
		Styles: []Style{
			{Key: "outlined_figures", Name: "Outlined Figures", Prompt: "as Keith Haring: bright cartoon-like bold outlines, simplified dog figure"},
			{Key: "motion_lines", Name: "Motion Lines", Prompt: "as Haring: dogs with radiating energy, motion lines, pop boldness"},
		},
	},
}
