// Package vehicle models the fleet unit shared by routes. Publishing a route
// reserves its vehicle and loads the approved units of the route's orders;
// delivered or cancelled stops unload; completing or cancelling the route
// releases the vehicle.
package vehicle
