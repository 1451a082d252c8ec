// Loads optional engine connection defaults from the user's settings file.
package settings
