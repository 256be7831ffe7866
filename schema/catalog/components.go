package catalog

import "github.com/meigma/recap/schema"

func volumeTypes(r *schema.Registry) {
	r.Struct("CollisionVolumeDef", 20,
		schema.EnumField("shape", "CollisionShape", 0),
		schema.Scalar("boxWidth", schema.TypeFloat, 4),
		schema.Scalar("boxHeight", schema.TypeFloat, 8),
		schema.Scalar("boxDepth", schema.TypeFloat, 12),
		schema.Scalar("sphereRadius", schema.TypeFloat, 16),
	)
	r.Struct("cVolumeDef", 28,
		schema.EnumField("shape", "cVolumeDefShape", 0),
		schema.Scalar("boxWidth", schema.TypeFloat, 4),
		schema.Scalar("boxLength", schema.TypeFloat, 8),
		schema.Scalar("boxHeight", schema.TypeFloat, 12),
		schema.Scalar("sphereRadius", schema.TypeFloat, 16),
		schema.Scalar("capsuleHeight", schema.TypeFloat, 20),
		schema.Scalar("capsuleRadius", schema.TypeFloat, 24),
	)

	r.Struct("TriggerVolumeDef", 136,
		schema.Scalar("onEnter", schema.TypeKey, 12),
		schema.Scalar("onExit", schema.TypeKey, 28),
		schema.Scalar("onStay", schema.TypeKey, 44),
		schema.Optional("events", "TriggerVolumeEvents", 48),
		schema.Scalar("useGameObjectDimensions", schema.TypeBool, 52),
		schema.Scalar("isKinematic", schema.TypeBool, 53),
		schema.EnumField("shape", "TriggerShape", 56),
		schema.Inline("offset", "cSPVector3", 60),
		schema.Scalar("timeToActivate", schema.TypeFloat, 72),
		schema.Scalar("persistentTimer", schema.TypeBool, 76),
		schema.Scalar("triggerOnceOnly", schema.TypeBool, 77),
		schema.Scalar("triggerIfNotBeaten", schema.TypeBool, 78),
		schema.EnumField("triggerActivationType", "triggerActivationType", 80),
		schema.Scalar("luaCallbackOnEnter", schema.TypeCharPtr, 84),
		schema.Scalar("luaCallbackOnExit", schema.TypeCharPtr, 88),
		schema.Scalar("luaCallbackOnStay", schema.TypeCharPtr, 92),
		schema.Scalar("boxWidth", schema.TypeFloat, 96),
		schema.Scalar("boxLength", schema.TypeFloat, 100),
		schema.Scalar("boxHeight", schema.TypeFloat, 104),
		schema.Scalar("sphereRadius", schema.TypeFloat, 108),
		schema.Scalar("capsuleHeight", schema.TypeFloat, 112),
		schema.Scalar("capsuleRadius", schema.TypeFloat, 116),
		schema.Scalar("serverOnly", schema.TypeBool, 120),
	)
	r.Struct("TriggerVolumeEvents", 32,
		schema.Scalar("onEnterEvent", schema.TypeKey, 12),
		schema.Scalar("onExitEvent", schema.TypeKey, 28),
	)
	r.Struct("TriggerVolumeComponentDef", 4,
		schema.Optional("triggerVolume", "TriggerVolumeDef", 0),
	)

	r.Struct("ProjectileDef", 12,
		schema.Optional("creatureCollisionVolume", "CollisionVolumeDef", 0),
		schema.Optional("otherCollisionVolume", "CollisionVolumeDef", 4),
		schema.EnumField("targetType", "ProjectileDef.targetType", 8),
	)
}

// componentTypes registers the component blocks a marker can carry.
// SharedComponentData holds one optional pointer per component.
func componentTypes(r *schema.Registry) {
	r.Struct("SharedComponentData", 40,
		schema.Optional("audioTrigger", "AudioTriggerDef", 0),
		schema.Optional("teleporter", "TeleporterDef", 4),
		schema.Optional("eventListenerDef", "EventListenerDef", 8),
		schema.Optional("spawnTrigger", "SpawnTriggerDef", 12),
		schema.Optional("spawnPointDef", "SpawnPointDef", 16),
		schema.Optional("interactable", "InteractableDef", 20),
		schema.Optional("defaultGfxState", "GameObjectGfxStateTuning", 24),
		schema.Optional("combatant", "CombatantDef", 28),
		schema.Optional("triggerComponent", "TriggerVolumeComponentDef", 32),
		schema.Optional("spaceshipSpawnPoint", "SpaceshipSpawnPointDef", 36),
	)

	r.Struct("AudioTriggerDef", 32,
		schema.EnumField("type", "type", 0),
		schema.Scalar("sound", schema.TypeKey, 16),
		schema.Scalar("bIs3D", schema.TypeBool, 20),
		schema.Scalar("retrigger", schema.TypeBool, 21),
		schema.Scalar("hardStop", schema.TypeBool, 22),
		schema.Scalar("isVoiceover", schema.TypeBool, 23),
		schema.Scalar("voiceLifetime", schema.TypeFloat, 24),
		schema.Optional("triggerVolume", "TriggerVolumeDef", 28),
	)
	r.Struct("TeleporterDef", 12,
		schema.Scalar("destinationMarkerId", schema.TypeUInt32, 0),
		schema.Optional("triggerVolume", "TriggerVolumeDef", 4),
		schema.Scalar("deferTriggerCreation", schema.TypeBool, 8),
	)
	r.Struct("EventListenerDef", 8,
		schema.Array("listener", "EventListenerData", 0),
	)
	r.Struct("EventListenerData", 40,
		schema.Scalar("event", schema.TypeKey, 0),
		schema.Scalar("callback", schema.TypeKey, 28),
		schema.Scalar("luaCallback", schema.TypeCharPtr, 36),
	)
	r.Struct("SpawnPointDef", 8,
		schema.EnumField("sectionType", "SpawnPointDef.sectionType", 0),
		schema.Scalar("activatesSpike", schema.TypeBool, 4),
	)
	r.Struct("SpawnTriggerDef", 28,
		schema.Optional("triggerVolume", "TriggerVolumeDef", 0),
		schema.Scalar("deathEvent", schema.TypeKey, 16),
		schema.Scalar("challengeOverride", schema.TypeInt, 20),
		schema.Scalar("waveOverride", schema.TypeInt, 24),
	)
	r.Struct("InteractableDef", 72,
		schema.Scalar("numUsesAllowed", schema.TypeInt, 0),
		schema.Scalar("interactableAbility", schema.TypeKey, 16),
		schema.Scalar("startInteractEvent", schema.TypeKey, 32),
		schema.Scalar("endInteractEvent", schema.TypeKey, 48),
		schema.Scalar("optionalInteractEvent", schema.TypeKey, 64),
		schema.Scalar("challengeValue", schema.TypeInt, 68),
	)
	r.Struct("GameObjectGfxStateTuning", 24,
		schema.Scalar("name", schema.TypeKey, 12),
		schema.Scalar("animationStartTime", schema.TypeFloat, 16),
		schema.Scalar("animationRate", schema.TypeFloat, 20),
	)
	r.Struct("CombatantDef", 16,
		schema.Scalar("deathEvent", schema.TypeKey, 12),
	)
	r.Struct("SpaceshipSpawnPointDef", 4,
		schema.Scalar("index", schema.TypeInt, 0),
	)

	r.Struct("cGfxComponentDef", 0x14,
		schema.Scalar("gfxType", schema.TypeEnum, 0x00),
		schema.Scalar("gfxKey", schema.TypeKey, 0x10),
	)
	r.Struct("cCameraComponent", 0x1C,
		schema.Scalar("azimuth", schema.TypeFloat, 0x08),
		schema.Scalar("elevation", schema.TypeFloat, 0x0C),
		schema.Scalar("distance", schema.TypeFloat, 0x10),
		schema.Scalar("transitionRate", schema.TypeFloat, 0x14),
		schema.Scalar("duration", schema.TypeFloat, 0x18),
	)

	r.Struct("cNewGfxState", 40,
		schema.Scalar("prefab", schema.TypeAsset, 0),
		schema.Scalar("model", schema.TypeKey, 16),
		schema.Scalar("animation", schema.TypeKey, 32),
	)
	r.Struct("cDoorDef", 24,
		schema.Optional("graphicsState_open", "cNewGfxState", 0),
	)
	r.Struct("cSwitchDef", 24,
		schema.Optional("graphicsState_unpressed", "cNewGfxState", 0),
		schema.Optional("graphicsState_pressing", "cNewGfxState", 4),
		schema.Optional("graphicsState_pressed", "cNewGfxState", 8),
	)
	r.Struct("cPressureSwitchDef", 0x28,
		schema.Optional("graphicsState_unpressed", "cNewGfxState", 0),
		schema.Optional("graphicsState_pressing", "cNewGfxState", 4),
		schema.Optional("graphicsState_pressed", "cNewGfxState", 8),
		schema.Inline("volume", "cVolumeDef", 12),
	)
}

func graphicsTypes(r *schema.Registry) {
	r.Struct("cGameObjectGfxStates", 8,
		schema.Array("state", "cGameObjectGfxStateData", 0),
	)
	r.Struct("cGameObjectGfxStateData", 56,
		schema.Scalar("name", schema.TypeKey, 12),
		schema.Scalar("model", schema.TypeKey, 28),
		schema.Scalar("animation", schema.TypeKey, 44),
		schema.Scalar("prefab", schema.TypeKey, 48),
		schema.Scalar("animationLoops", schema.TypeKey, 52),
	)

	r.Struct("Cinematic", 8,
		schema.Array("view", "cCinematicView", 0),
	)
	r.Struct("cCinematicView", 0x28,
		schema.Scalar("position", schema.TypeVector3, 0x08),
		schema.Scalar("orientation", schema.TypeOrientation, 0x0C),
		schema.Scalar("fov", schema.TypeFloat, 0x1C),
		schema.Scalar("targetTime", schema.TypeFloat, 0x20),
		schema.Scalar("delayTime", schema.TypeFloat, 0x24),
	)

	r.Struct("cThumbnailCaptureParameters", 108,
		schema.Scalar("fovY", schema.TypeFloat, 0),
		schema.Scalar("nearPlane", schema.TypeFloat, 4),
		schema.Scalar("farPlane", schema.TypeFloat, 8),
		schema.Scalar("cameraPosition", schema.TypeVector3, 12),
		schema.Scalar("cameraScale", schema.TypeFloat, 24),
		schema.Scalar("cameraRotation_0", schema.TypeVector3, 28),
		schema.Scalar("cameraRotation_1", schema.TypeVector3, 40),
		schema.Scalar("cameraRotation_2", schema.TypeVector3, 52),
		schema.Scalar("mouseCameraDataValid", schema.TypeBool, 64),
		schema.Scalar("mouseCameraOffset", schema.TypeFloat, 68),
		schema.Scalar("mouseCameraSubjectPosition", schema.TypeVector3, 72),
		schema.Scalar("mouseCameraTheta", schema.TypeFloat, 84),
		schema.Scalar("mouseCameraPhi", schema.TypeFloat, 88),
		schema.Scalar("mouseCameraRoll", schema.TypeFloat, 92),
		schema.Scalar("poseAnimID", schema.TypeUInt32, 96),
	)

	r.Struct("cLayerPrefs", 0x8,
		schema.Scalar("layerName", schema.TypeCharPtr, 0x0),
		schema.Scalar("locked", schema.TypeBool, 0x4),
		schema.Scalar("hidden", schema.TypeBool, 0x5),
	)
}

// runtimeTypes registers game-state records found in server snapshots
// rather than in compiled assets. Only the known fields are listed.
func runtimeTypes(r *schema.Registry) {
	r.Struct("CombatEvent", 0x28,
		schema.Scalar("flags", schema.TypeUInt16, 0x00),
		schema.Scalar("deltaHealth", schema.TypeFloat, 0x04),
		schema.Scalar("absorbedAmount", schema.TypeFloat, 0x08),
		schema.Scalar("targetID", schema.TypeObjID, 0x0C),
		schema.Scalar("sourceID", schema.TypeObjID, 0x10),
		schema.Scalar("abilityID", schema.TypeObjID, 0x14),
		schema.Scalar("damageDirection", schema.TypeVector3, 0x18),
		schema.Scalar("integerHpChange", schema.TypeInt32, 0x24),
	)
	r.Struct("cAgentBlackboard", 0x598,
		schema.Scalar("mTarget", schema.TypeObjID, 0x550),
		schema.Scalar("mbInCombat", schema.TypeBool, 0x554),
		schema.Scalar("mStealthType", schema.TypeUInt8, 0x556),
		schema.Scalar("mbTargetable", schema.TypeBool, 0x578),
		schema.Scalar("mNumAttackers", schema.TypeUInt32, 0x57C),
	)
	r.Struct("cCombatantData", 0x70,
		schema.Scalar("mHitPoints", schema.TypeFloat, 0x08),
		schema.Scalar("mManaPoints", schema.TypeVector4, 0x44),
	)
	r.Struct("cControllerState", 0x20,
		schema.Scalar("holdPosition", schema.TypeBool, 0x0),
		schema.Scalar("moveDirection", schema.TypeVector3, 0x4),
	)
	r.Struct("cInteractableData", 0x34,
		schema.Scalar("mNumTimesUsed", schema.TypeInt, 0x08),
		schema.Scalar("mNumUsesAllowed", schema.TypeInt, 0x0C),
		schema.Scalar("mInteractableAbility", schema.TypeUInt32, 0x14),
	)
	r.Struct("cLobParams", 0x54,
		schema.Scalar("lobUpDir", schema.TypeVector3, 0x18),
		schema.Scalar("bounceNum", schema.TypeInt, 0x30),
		schema.Scalar("bounceRestitution", schema.TypeFloat, 0x34),
		schema.Scalar("groundCollisionOnly", schema.TypeBool, 0x38),
		schema.Scalar("stopBounceOnCreatures", schema.TypeBool, 0x39),
		schema.Scalar("planeDir", schema.TypeVector3, 0x3C),
		schema.Scalar("planeDirLinearParam", schema.TypeFloat, 0x48),
		schema.Scalar("upLinearParam", schema.TypeFloat, 0x4C),
		schema.Scalar("upQuadraticParam", schema.TypeFloat, 0x50),
	)
	r.Struct("cLootData", 0x80,
		schema.Scalar("crystalLevel", schema.TypeInt, 0x00),
		schema.Scalar("mLootItem.id", schema.TypeUInt64, 0x10),
		schema.Scalar("mLootItem.rigblockAsset", schema.TypeAsset, 0x18),
		schema.Scalar("mLootItem.suffixAssetId", schema.TypeUInt32, 0x1C),
		schema.Scalar("mLootItem.prefixAssetId1", schema.TypeUInt32, 0x20),
		schema.Scalar("mLootItem.prefixAssetId2", schema.TypeUInt32, 0x24),
		schema.Scalar("mLootItem.itemLevel", schema.TypeInt, 0x28),
		schema.Scalar("mLootItem.rarity", schema.TypeUInt64, 0x2C),
		schema.Scalar("mLootInstanceId", schema.TypeUInt64, 0x40),
		schema.Scalar("mDNAAmount", schema.TypeFloat, 0x48),
	)
	r.Struct("cProjectileParams", 0x290,
		schema.Scalar("mSpeed", schema.TypeFloat, 0x00),
		schema.Scalar("mAcceleration", schema.TypeFloat, 0x04),
		schema.Scalar("mJinkInfo", schema.TypeUInt32, 0x08),
		schema.Scalar("mRange", schema.TypeFloat, 0x0C),
		schema.Scalar("mSpinRate", schema.TypeFloat, 0x10),
		schema.Scalar("mDirection", schema.TypeVector3, 0x14),
		schema.Scalar("mProjectileFlags", schema.TypeUInt8, 0x20),
		schema.Scalar("mHomingDelay", schema.TypeFloat, 0x24),
		schema.Scalar("mTurnRate", schema.TypeFloat, 0x28),
		schema.Scalar("mTurnAcceleration", schema.TypeFloat, 0x2C),
		schema.Scalar("mPiercing", schema.TypeBool, 0x30),
		schema.Scalar("mIgnoreGroundCollide", schema.TypeBool, 0x31),
		schema.Scalar("mIgnoreCreatureCollide", schema.TypeBool, 0x32),
		schema.Scalar("mEccentricity", schema.TypeFloat, 0x34),
		schema.Scalar("mCombatantSweepHeight", schema.TypeBool, 0x38),
	)
}
