package catalog

var defaultEquipmentSlots = []string{
	"Head",
	"Shoulders",
	"Chest",
	"Gloves",
	"Waist",
	"Legs",
	"Boots",
	"Ring 1",
	"Ring 2",
	"Necklace",
	"Main Bar Weapon 1",
	"Main Bar Weapon 2",
	"Back Bar Weapon 1",
	"Back Bar Weapon 2",
}

var defaultSets = []string{
	"Heartland Conqueror",
	"Spriggans Thorns",
	"Burning Spell Weave",
	"Mothers Sorrow",
	"Seducer",
	"Julianos",
	"Martial Knowledge",
	"Hunding's Rage",
	"Way of Martial Arts",
	"Stormfist",
	"Ebon Armory",
	"Plague Doctor",
	"Healing Mage",
	"Twilight Remedy",
	"Olorime",
	"Spell Precision",
	"Critical Leech",
	"Daedric Trickery",
	"Darloc Brae",
	"Robes of Bahraha's Curse",
	"Deadlight",
	"Nereid's Kiss",
	"Elemental Siege",
	"Clever Alchemist",
}

var defaultCategories = []string{
	"dragonknight",
	"templar",
	"sorcerer",
	"nightblade",
	"warden",
	"necromancer",
	"arcanist",
}

var defaultAbilities = map[string][]string{
	"dragonknight": {
		"Molten Whip",
		"Flames of Oblivion",
		"Engulfing Flames",
		"Igneous Shield",
		"Chains",
		"Spiked Armor",
		"Stonefist",
		"Standard of Might",
	},
	"templar": {
		"Puncturing Sweeps",
		"Radiant Destruction",
		"Blazing Spear",
		"Breath of Life",
		"Channeled Focus",
		"Extended Ritual",
		"Crescent Sweep",
	},
	"sorcerer": {
		"Crystal Fragments",
		"Bound Armaments",
		"Daedric Prey",
		"Lightning Splash",
		"Hardened Ward",
		"Critical Surge",
		"Greater Storm Atronach",
	},
	"nightblade": {
		"Surprise Attack",
		"Merciless Resolve",
		"Relentless Focus",
		"Shadow Cloak",
		"Funnel Health",
		"Siphoning Attacks",
		"Incapacitating Strike",
	},
	"warden": {
		"Cutting Dive",
		"Subterranean Assault",
		"Deep Fissure",
		"Enchanted Growth",
		"Lotus Blossom",
		"Frozen Gate",
		"Northern Storm",
	},
	"necromancer": {
		"Blastbones",
		"Skeletal Arcanist",
		"Boneyard",
		"Render Flesh",
		"Spirit Guardian",
		"Bone Goliath Transformation",
		"Frozen Colossus",
	},
	"arcanist": {
		"Fatecarver",
		"Runeblades",
		"Abyssal Impact",
		"Runemend",
		"Chakram Shields",
		"Runic Jolt",
		"The Languid Eye",
	},
}

var defaultRaids = []string{
	"Aetherian Archive",
	"Hel Ra Citadel",
	"Sanctum Ophidia",
	"Maw of Lorkhaj",
	"Halls of Fabrication",
	"Asylum Sanctorium",
	"Cloudrest",
	"Sunspire",
	"Kyne's Aegis",
	"Rockgrove",
	"Dreadsail Reef",
	"Sanity's Edge",
	"Lucent Citadel",
}
