// Package dom provides the element tree and DOM event bridge that shortcut
// registrations are made against.
//
// Elements form a tree rooted at a Document body. Listeners are registered
// per element and event type with AddEventListener. Each registration can be
// primed with a filter expression and event data expressions; both are
// JavaScript-style expressions that are evaluated in the document's remote
// context when a browser event is dispatched, not in the registering code.
//
// # Remote context
//
// The document evaluates expressions in an embedded Lua interpreter after
// rewriting the supported JavaScript subset:
//
//	event.key.toLowerCase() == 'f' && event.getModifierState('Meta')
//
// becomes
//
//	event.key:lower() == 'f' and event.getModifierState('Meta')
//
// A filter that does not evaluate to exactly true (including one that fails
// to compile or raises an error) means the event is not delivered to that
// listener. Delivery failures are never reported to the dispatcher.
//
// # Event data
//
// Event data expressions are evaluated after the filter matched, in the order
// they were added. Their results are sent to the listener as a JSON payload
// keyed by expression, which is how typed events read values such as
// "event.key". Expressions with side effects, like "event.preventDefault()"
// and "event.stopPropagation()", affect the dispatch that is in progress.
//
// # Bubbling
//
// Dispatch walks from the target element up to the body. All listeners on an
// element run before propagation is checked, so stopPropagation prevents
// delivery to ancestors only.
package dom
