package producttype

import "sync-actions/core/reconcile"

// Update action names.
const (
	ActionChangeName                    = "changeName"
	ActionSetKey                        = "setKey"
	ActionChangeDescription             = "changeDescription"
	ActionChangeLabel                   = "changeLabel"
	ActionSetInputTip                   = "setInputTip"
	ActionChangeInputHint               = "changeInputHint"
	ActionChangeIsSearchable            = "changeIsSearchable"
	ActionChangeAttributeConstraint     = "changeAttributeConstraint"
	ActionAddPlainEnumValue             = "addPlainEnumValue"
	ActionAddLocalizedEnumValue         = "addLocalizedEnumValue"
	ActionChangePlainEnumValueOrder     = "changePlainEnumValueOrder"
	ActionChangeLocalizedEnumValueOrder = "changeLocalizedEnumValueOrder"
	ActionChangePlainEnumValueLabel     = "changePlainEnumValueLabel"
	ActionChangeLocalizedEnumValueLabel = "changeLocalizedEnumValueLabel"
	ActionRemoveEnumValue               = "removeEnumValue"
	ActionRemoveEnumValues              = "removeEnumValues"
	ActionAddAttributeDefinition        = "addAttributeDefinition"
	ActionRemoveAttributeDefinition     = "removeAttributeDefinition"
	ActionChangeAttributeOrder          = "changeAttributeOrder"
)

// Action groups.
const (
	GroupBase       = "base"
	GroupAttributes = "attributes"
)

// Payload fields shared by several actions.
const (
	fieldAttributeName = "attributeName"
	fieldValue         = "value"
	fieldValues        = "values"
	fieldNewValue      = "newValue"
	fieldKeys          = "keys"
	fieldAttribute     = "attribute"
	fieldAttributes    = "attributes"
	fieldName          = "name"
)

// baseDescriptors map product-type fields onto their actions.
var baseDescriptors = []reconcile.FieldAction{
	{Action: ActionChangeName, Key: "name"},
	{Action: ActionSetKey, Key: "key"},
	{Action: ActionChangeDescription, Key: "description"},
}

// attributeDescriptors map attribute-definition fields onto their actions.
var attributeDescriptors = []reconcile.FieldAction{
	{Action: ActionChangeLabel, Key: "label"},
	{Action: ActionSetInputTip, Key: "inputTip"},
	{Action: ActionChangeInputHint, Key: "inputHint", ActionKey: fieldNewValue},
	{Action: ActionChangeIsSearchable, Key: "isSearchable"},
	{Action: ActionChangeAttributeConstraint, Key: "attributeConstraint", ActionKey: fieldNewValue},
}

// attributeBaseFields are the fields covered by attributeDescriptors.
var attributeBaseFields = []string{"label", "inputHint", "inputTip", "attributeConstraint", "isSearchable"}

// enumVocabulary is the action set of one enum flavour.
type enumVocabulary struct {
	add         string
	changeOrder string
	changeLabel string
}

var (
	plainEnum = enumVocabulary{
		add:         ActionAddPlainEnumValue,
		changeOrder: ActionChangePlainEnumValueOrder,
		changeLabel: ActionChangePlainEnumValueLabel,
	}
	localizedEnum = enumVocabulary{
		add:         ActionAddLocalizedEnumValue,
		changeOrder: ActionChangeLocalizedEnumValueOrder,
		changeLabel: ActionChangeLocalizedEnumValueLabel,
	}
)

// vocabularyFor picks the enum flavour from a type name: "enum" is plain,
// anything else is localized.
func vocabularyFor(typeName string) enumVocabulary {
	if typeName == "enum" {
		return plainEnum
	}
	return localizedEnum
}
