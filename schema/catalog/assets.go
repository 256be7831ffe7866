package catalog

import "github.com/meigma/recap/schema"

func characterTypes(r *schema.Registry) {
	// creatureType and mNPCType bind to "NonPlayerClass.<field>" enums.
	r.Struct("NonPlayerClass", 0x7C,
		schema.Scalar("testingOnly", schema.TypeBool, 0x00),
		schema.Scalar("creatureType", schema.TypeEnum, 0x04),
		schema.Scalar("mpClassEffect", schema.TypeAsset, 0x08),
		schema.Scalar("mpClassAttributes", schema.TypeAsset, 0x0C),
		schema.LocalizedString("name", 0x10),
		schema.Scalar("challengeValue", schema.TypeInt, 0x24),
		schema.EnumArray("dropType", "NonPlayerClass.dropType", 0x28),
		schema.Scalar("dropDelay", schema.TypeFloat, 0x34),
		schema.Scalar("aggroRange", schema.TypeFloat, 0x38),
		schema.Scalar("alertRange", schema.TypeFloat, 0x3C),
		schema.Scalar("dropAggroRange", schema.TypeFloat, 0x40),
		schema.Scalar("mNPCType", schema.TypeEnum, 0x44),
		schema.Scalar("npcRank", schema.TypeInt, 0x48),
		schema.Scalar("targetable", schema.TypeBool, 0x4C),
		schema.LocalizedString("description", 0x50),
		schema.Scalar("playerCountHealthScale", schema.TypeFloat, 0x64),
		schema.Array("longDescription", "cLongDescription", 0x68),
		schema.Array("eliteAffix", "cEliteAffix", 0x70),
		schema.Scalar("playerPet", schema.TypeBool, 0x78),
	)
	r.Struct("cEliteAffix", 0x0C,
		schema.Scalar("mpNPCAffix", schema.TypeAsset, 0x0),
		schema.Scalar("minDifficulty", schema.TypeInt, 0x4),
		schema.Scalar("maxDifficulty", schema.TypeInt, 0x8),
	)

	r.Struct("ClassAttributes", 0x58,
		schema.Scalar("baseHealth", schema.TypeFloat, 0x00),
		schema.Scalar("baseMana", schema.TypeFloat, 0x04),
		schema.Scalar("baseStrength", schema.TypeFloat, 0x08),
		schema.Scalar("baseDexterity", schema.TypeFloat, 0x0C),
		schema.Scalar("baseMind", schema.TypeFloat, 0x10),
		schema.Scalar("basePhysicalDefense", schema.TypeFloat, 0x14),
		schema.Scalar("baseMagicalDefense", schema.TypeFloat, 0x18),
		schema.Scalar("baseEnergyDefense", schema.TypeFloat, 0x1C),
		schema.Scalar("baseCritical", schema.TypeFloat, 0x20),
		schema.Scalar("baseCombatSpeed", schema.TypeFloat, 0x24),
		schema.Scalar("baseNonCombatSpeed", schema.TypeFloat, 0x28),
		schema.Scalar("baseStealthDetection", schema.TypeFloat, 0x2C),
		schema.Scalar("baseMovementSpeedBuff", schema.TypeFloat, 0x30),
		schema.Scalar("maxHealth", schema.TypeFloat, 0x34),
		schema.Scalar("maxMana", schema.TypeFloat, 0x38),
		schema.Scalar("maxStrength", schema.TypeFloat, 0x3C),
		schema.Scalar("maxDexterity", schema.TypeFloat, 0x40),
		schema.Scalar("maxMind", schema.TypeFloat, 0x44),
		schema.Scalar("maxPhysicalDefense", schema.TypeFloat, 0x48),
		schema.Scalar("maxMagicalDefense", schema.TypeFloat, 0x4C),
		schema.Scalar("maxEnergyDefense", schema.TypeFloat, 0x50),
		schema.Scalar("maxCritical", schema.TypeFloat, 0x54),
	)

	r.Struct("CharacterType", 0x7C,
		schema.Scalar("BaseResistance_Technology", schema.TypeFloat, 0x00),
		schema.Scalar("BaseResistance_Spacetime", schema.TypeFloat, 0x0C),
		schema.Scalar("BaseResistance_Life", schema.TypeFloat, 0x18),
		schema.Scalar("BaseResistance_Elements", schema.TypeFloat, 0x24),
		schema.Scalar("BaseResistance_Supernatural", schema.TypeFloat, 0x30),
		schema.Scalar("DamageMultiplier_Technology", schema.TypeFloat, 0x3C),
		schema.Scalar("DamageMultiplier_Spacetime", schema.TypeFloat, 0x48),
		schema.Scalar("DamageMultiplier_Life", schema.TypeFloat, 0x54),
		schema.Scalar("DamageMultiplier_Elements", schema.TypeFloat, 0x60),
		schema.Scalar("DamageMultiplier_Supernatural", schema.TypeFloat, 0x6C),
		schema.Scalar("UIColor", schema.TypeUInt32, 0x78),
	)

	// Animation state keys sit in 16-byte slots.
	r.Struct("CharacterAnimation", 0x2A4,
		schema.Scalar("gaitOverlay", schema.TypeUInt32, 0x50),
		schema.Scalar("ignoreGait", schema.TypeBool, 0x54),
		schema.Scalar("morphology", schema.TypeKey, 0x64),
		schema.Scalar("preAggroIdleAnimState", schema.TypeKey, 0x74),
		schema.Scalar("idleAnimState", schema.TypeKey, 0x84),
		schema.Scalar("lobbyIdleAnimState", schema.TypeKey, 0x94),
		schema.Scalar("specialIdleAnimState", schema.TypeKey, 0xA4),
		schema.Scalar("walkStopState", schema.TypeKey, 0xB4),
		schema.Scalar("victoryIdleAnimState", schema.TypeKey, 0xC4),
		schema.Scalar("combatIdleAnimState", schema.TypeKey, 0xD4),
		schema.Scalar("moveAnimState", schema.TypeKey, 0xE4),
		schema.Scalar("combatMoveAnimState", schema.TypeKey, 0xF4),
		schema.Scalar("deathAnimState", schema.TypeKey, 0x104),
		schema.Scalar("aggroAnimState", schema.TypeKey, 0x114),
		schema.Scalar("aggroAnimDuration", schema.TypeFloat, 0x118),
		schema.Scalar("subsequentAggroAnimState", schema.TypeKey, 0x128),
		schema.Scalar("subsequentAggroAnimDuration", schema.TypeFloat, 0x12C),
		schema.Scalar("enterPassiveIdleAnimState", schema.TypeKey, 0x13C),
		schema.Scalar("enterPassiveIdleAnimDuration", schema.TypeFloat, 0x140),
		schema.Scalar("danceEmoteAnimState", schema.TypeKey, 0x150),
		schema.Scalar("tauntEmoteAnimState", schema.TypeKey, 0x160),
		schema.Scalar("meleeDeathAnimState", schema.TypeKey, 0x170),
		schema.Scalar("meleeCritDeathAnimState", schema.TypeKey, 0x180),
		schema.Scalar("meleeCritKnockbackDeathAnimState", schema.TypeKey, 0x190),
		schema.Scalar("cyberCritDeathAnimState", schema.TypeKey, 0x1A0),
		schema.Scalar("cyberCritKnockbackDeathAnimState", schema.TypeKey, 0x1B0),
		schema.Scalar("plasmaCritDeathAnimState", schema.TypeKey, 0x1C0),
		schema.Scalar("plasmaCritKnockbackDeathAnimState", schema.TypeKey, 0x1D0),
		schema.Scalar("bioCritDeathAnimState", schema.TypeKey, 0x1E0),
		schema.Scalar("bioCritKnockbackDeathAnimState", schema.TypeKey, 0x1F0),
		schema.Scalar("necroCritDeathAnimState", schema.TypeKey, 0x200),
		schema.Scalar("necroCritKnockbackDeathAnimState", schema.TypeKey, 0x210),
		schema.Scalar("spacetimeCritDeathAnimState", schema.TypeKey, 0x220),
		schema.Scalar("spacetimeCritKnockbackDeathAnimState", schema.TypeKey, 0x230),
		schema.Scalar("bodyFadeAnimState", schema.TypeKey, 0x240),
		schema.Scalar("randomAbility1AnimState", schema.TypeKey, 0x250),
		schema.Scalar("randomAbility2AnimState", schema.TypeKey, 0x260),
		schema.Scalar("randomAbility3AnimState", schema.TypeKey, 0x270),
		schema.Scalar("overlay1AnimState", schema.TypeKey, 0x280),
		schema.Scalar("overlay2AnimState", schema.TypeKey, 0x290),
		schema.Scalar("overlay3AnimState", schema.TypeKey, 0x2A0),
	)
}

// aiTypes registers the behavior graph: an AIDefinition holds nodes that
// point at Phase and Condition assets.
func aiTypes(r *schema.Registry) {
	r.Struct("AIDefinition", 640,
		schema.Array("ainode", "cAINode", 0),
		schema.Scalar("deathAbility", schema.TypeKey, 512),
	)
	r.Struct("cAINode", 28,
		schema.Scalar("mpPhaseData", schema.TypeAsset, 0),
		schema.Scalar("mpConditionData", schema.TypeAsset, 4),
		schema.Scalar("nodeX", schema.TypeInt, 12),
		schema.Scalar("nodeY", schema.TypeInt, 16),
		schema.ArrayOf("output", schema.TypeInt, 20),
	)
	r.Struct("Phase", 16,
		schema.Array("gambit", "cGambitDefinition", 0),
		schema.EnumField("phaseType", "phaseType", 8),
		schema.Scalar("startNode", schema.TypeBool, 12),
	)
	r.Struct("cGambitDefinition", 52,
		schema.Scalar("condition", schema.TypeKey, 12),
		schema.Array("conditionProps", "cAssetProperty", 16),
		schema.Scalar("ability", schema.TypeKey, 36),
		schema.Array("abilityProps", "cAssetProperty", 40),
		schema.Scalar("randomizeCooldown", schema.TypeBool, 48),
	)
	r.Struct("Condition", 0x24,
		schema.Scalar("condition", schema.TypeKey, 0x0C),
		schema.Inline("conditionProps", "cAssetPropertyList", 0x10),
		schema.Scalar("activateOnce", schema.TypeBool, 0x18),
		schema.Scalar("checkOnSequenceEnd", schema.TypeBool, 0x19),
		schema.Scalar("activateTime", schema.TypeFloat, 0x1C),
		schema.Scalar("checkTimeInterval", schema.TypeFloat, 0x20),
	)
	r.Struct("cAICondition", 0x78,
		schema.Scalar("conditionType", schema.TypeInt, 0x00),
		schema.CharBuffer("namespace", 0x04, 0x50),
		schema.CharBuffer("name", 0x54, 0x10),
		schema.PropertyVector("properties", 0x68),
	)
}

func tuningTypes(r *schema.Registry) {
	r.Struct("AffixTuning", 24,
		schema.ArrayOf("positiveChance", schema.TypeUInt32, 0),
		schema.ArrayOf("minorChance", schema.TypeUInt32, 8),
		schema.ArrayOf("majorChance", schema.TypeUInt32, 16),
	)
	r.Struct("cAffixDifficultyTuning", 0x18,
		schema.Scalar("minAffixes", schema.TypeInt, 0x00),
		schema.Scalar("maxAffixes", schema.TypeInt, 0x04),
		schema.Scalar("chanceToSpawn", schema.TypeFloat, 0x08),
		schema.Scalar("specialMinAffixes", schema.TypeInt, 0x0C),
		schema.Scalar("specialMaxAffixes", schema.TypeInt, 0x10),
		schema.Scalar("specialChanceToSpawn", schema.TypeFloat, 0x14),
	)

	r.Struct("ChainLevel", 72,
		schema.Scalar("Unk3", schema.TypeAsset, 0x00),
		schema.Scalar("Unk4", schema.TypeKey, 0x14),
		schema.Scalar("Unk5", schema.TypeKey, 0x24),
		schema.Scalar("Unk6", schema.TypeKey, 0x34),
		schema.Scalar("Unk7", schema.TypeAsset, 0x44),
	)
	r.Struct("ChainLevels", 24,
		schema.Array("UnkChainLevel", "ChainLevel", 0x00),
		schema.Array("UnkChainLevel2", "ChainLevel", 0x08),
		schema.Scalar("Unk1", schema.TypeFloat, 0x10),
		schema.Scalar("Unk2", schema.TypeUInt32, 0x14),
	)

	r.Struct("CrystalDef", 0x18,
		schema.Scalar("modifier", schema.TypeKey, 0x00),
		schema.Scalar("type", schema.TypeEnum, 0x10),
		schema.Scalar("rarity", schema.TypeEnum, 0x14),
	)
	r.Struct("CrystalDropDef", 0x10,
		schema.Scalar("minLevel", schema.TypeInt, 0x0),
		schema.Scalar("maxLevel", schema.TypeInt, 0x4),
		schema.Scalar("weight", schema.TypeInt, 0x8),
		schema.Scalar("mpNoun", schema.TypeAsset, 0xC),
	)
	r.Struct("CrystalLevel", 0x8,
		schema.Scalar("offset", schema.TypeInt, 0x0),
		schema.Scalar("probability", schema.TypeFloat, 0x4),
	)

	r.Struct("LocomotionTuning", 12,
		schema.Scalar("acceleration", schema.TypeFloat, 0),
		schema.Scalar("deceleration", schema.TypeFloat, 4),
		schema.Scalar("turnRate", schema.TypeFloat, 8),
	)
	r.Struct("OrbitDef", 12,
		schema.Scalar("orbitHeight", schema.TypeFloat, 0),
		schema.Scalar("orbitRadius", schema.TypeFloat, 4),
		schema.Scalar("orbitSpeed", schema.TypeFloat, 8),
	)
}
