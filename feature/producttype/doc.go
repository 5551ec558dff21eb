// Package producttype implements the product-type sync actions feature.
//
// Given a previous and a next product-type snapshot it computes the ordered
// update actions that turn previous into next when applied remotely. The
// remote call itself is out of scope.
//
// # Action groups
//
//   - base: changeName, setKey, changeDescription.
//   - attributes: addAttributeDefinition, removeAttributeDefinition,
//     changeAttributeOrder, the attribute field actions (changeLabel,
//     setInputTip, changeInputHint, changeIsSearchable,
//     changeAttributeConstraint) and the enum value actions.
//
// Enum value removals collapse into one removeEnumValues action and reorders
// collapse into one change*EnumValueOrder action holding the full next
// values. Both come after the per-value actions of the same attribute.
//
// # Components
//
//   - Syncer: diffs two snapshots (or takes a delta) and builds the actions.
//   - Apply / Verify: replay an action list against a document.
//   - SnapshotStore: loads and saves snapshots in object storage.
//   - PlanRepository: records computed plans in the sync_plans table.
//   - Service, Handler, Feature: HTTP surface and registration.
//
// # HTTP Endpoints
//
//   - POST /product-types/actions : Actions between two inline snapshots.
//   - POST /product-types/actions/delta : Actions for a pre-computed delta.
//   - POST /product-types/snapshots/actions : Actions between two stored snapshots.
//   - GET /product-types/plans/:id : A recorded plan.
package producttype
