package catalog

import "github.com/meigma/recap/schema"

func packetTypes(r *schema.Registry) {
	r.Struct("ability", 0x1E8,
		schema.CharBuffer("namespace", 0x50, 10),
		schema.Scalar("requiresAgent", schema.TypeBool, 0x5A),
		schema.Scalar("allowsMovement", schema.TypeInt, 0x5C),

		schema.Scalar("reticleEffect", schema.TypeKey, 0x74),
		schema.Scalar("icon", schema.TypeKey, 0x78),
		schema.Scalar("localizedGroup", schema.TypeKey, 0x7C),
		schema.Scalar("localizedName", schema.TypeKey, 0x80),
		schema.Scalar("localizedDescription", schema.TypeKey, 0x84),
		schema.Scalar("localizedShortDescription", schema.TypeKey, 0xA4),
		schema.Scalar("localizedOverdriveDescription", schema.TypeKey, 0xA8),
		schema.Scalar("lootGroup", schema.TypeKey, 0xAC),
		schema.Scalar("lootDescription", schema.TypeKey, 0xB0),

		schema.Scalar("cooldown", schema.TypeFloat, 0xD0),
		schema.Scalar("cooldownVariance", schema.TypeFloat, 0xF0),
		schema.Scalar("range", schema.TypeFloat, 0x110),

		schema.Scalar("maxStackCount", schema.TypeInt, 0x130),

		schema.Scalar("noGlobalCooldown", schema.TypeBool, 0x150),
		schema.Scalar("shouldPursue", schema.TypeBool, 0x151),
		schema.Scalar("finishOnDeath", schema.TypeBool, 0x152),
		schema.Scalar("alwaysUseCursorPos", schema.TypeBool, 0x153),
		schema.Scalar("channelled", schema.TypeBool, 0x154),
		schema.Scalar("showChannelBar", schema.TypeBool, 0x155),
		schema.Scalar("minimumChannelTimeMs", schema.TypeUInt32, 0x158),
		schema.Scalar("faceTargetOnCreate", schema.TypeBool, 0x15C),

		schema.Scalar("descriptors", schema.TypeUInt32, 0x160),
		schema.Scalar("debuffDescriptors", schema.TypeUInt32, 0x164),
		schema.Scalar("damageType", schema.TypeUInt32, 0x168),
		schema.Scalar("damageSource", schema.TypeUInt32, 0x16C),
		schema.Scalar("damageCoefficient", schema.TypeFloat, 0x170),
		schema.Scalar("healingCoefficient", schema.TypeFloat, 0x174),
		schema.Scalar("modifierPriority", schema.TypeInt, 0x178),
		schema.Scalar("deactivateOnInterrupt", schema.TypeBool, 0x17C),

		schema.Scalar("statusAnimation", schema.TypeKey, 0x180),
		schema.Scalar("statusHeadEffect", schema.TypeAsset, 0x184),
		schema.Scalar("statusBodyEffect", schema.TypeAsset, 0x188),
		schema.Scalar("statusFootEffect", schema.TypeAsset, 0x18C),

		schema.Scalar("activationType", schema.TypeInt, 0x190),
		schema.Scalar("deactivationType", schema.TypeInt, 0x194),
		schema.Scalar("interfaceType", schema.TypeInt, 0x198),
		schema.Scalar("cooldownType", schema.TypeInt, 0x19C),
		schema.Scalar("targetType", schema.TypeInt, 0x1A0),

		schema.Scalar("handledEvents", schema.TypeInt, 0x1A4),
		schema.PropertyVector("properties", 0x1A8),

		schema.Scalar("scalingAttribute", schema.TypeInt, 0x1B8),
		schema.Scalar("primaryAttributeStat", schema.TypeInt, 0x1BC),
		schema.Scalar("primaryAttributeStatDelegate", schema.TypeKey, 0x1C0),
		schema.Scalar("manaCoefficient", schema.TypeFloat, 0x1C4),

		schema.Scalar("saveOnDehydrate", schema.TypeBool, 0x1E4),
		schema.Scalar("rejectable", schema.TypeBool, 0x1E5),
	)

	r.Struct("affix", 0x6C,
		schema.CharBuffer("namespace", 0x10, 0x50),
		schema.Scalar("localizedText", schema.TypeUInt32, 0x60),
		schema.Scalar("objective", schema.TypeUInt32, 0x64),
		schema.Scalar("handledEvents", schema.TypeUInt32, 0x68),
	)
}
