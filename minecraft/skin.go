package minecraft

// Skin says where a profile's skin texture lives and which model it is
// meant for.
type Skin struct {
	Url   string
	Model string
}

// GetSkin picks the profile's skin, falling back to the default Steve or
// Alex texture when the player has not uploaded one.
func GetSkin(pc Profile) (Skin, error) {
	td, err := pc.Textures()
	if err != nil && err != ERR_HAS_NO_SKIN {
		return Skin{}, err
	}

	if td != nil {
		if skin, ok := td.Textures["SKIN"]; ok && skin.Url != "" {
			model := MODEL_CLASSIC
			if skin.Metadata.Model == MODEL_SLIM {
				model = MODEL_SLIM
			}
			return Skin{Url: skin.Url, Model: model}, nil
		}
	}

	return fallbackSkin(pc)
}
